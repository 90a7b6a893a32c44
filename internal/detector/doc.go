// Package detector decides whether a devcontainer.json document declares a
// docker compose setup.
//
// The default text mode searches the serialized input for the key name, which
// also matches occurrences inside string values or nested objects. Key mode
// parses the document and only inspects its top-level fields.
package detector
