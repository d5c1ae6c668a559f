// Package registry provides a generic, type-safe catalog for matcher
// factories and editor items. Entries keep their registration order, which
// is the order editors list them in. A registry is sealed once populated;
// after that it only serves lookups.
package registry
