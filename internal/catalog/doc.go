// Package catalog defines the static template catalog: for each
// supported project type, the directories to create, the embedded file
// tree to deploy, the Docker assets, and the next-steps guidance.
//
// The catalog is immutable and defined at build time. Lookup is a pure
// function of the project type; nothing here touches the user's disk.
package catalog
