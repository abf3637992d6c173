// Package pkgconfig provides a small abstraction for reading configuration values.
//
// Values come from a YAML file and may be overridden by environment variables
// (a key such as "upload.max_size" is read from UPLOAD_MAX_SIZE). Business code
// depends on the Config interface and never on Viper directly.
package pkgconfig
