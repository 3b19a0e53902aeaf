// Package manual parses hand-entered equipment records.
//
// Anomaly armor rows describe augmented armor pieces as differences over a base
// piece; talisman rows describe charms. Both refer to armor and skills by display
// name in any language, resolved against a loaded catalog set.
package manual
