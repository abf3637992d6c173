// Package pkguid generates identifiers.
//
// UUID (version 7) backs request correlation IDs; Snowflake backs the names
// of scratch files written for uploads.
package pkguid
