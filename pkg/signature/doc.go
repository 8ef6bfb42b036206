// Package signature recovers parameter names from the textual signature of a method.
//
// Parsing is best effort and is only used when a name is not supplied explicitly.
// Known limitations, not to be fixed here:
//   - commas, `=` or `:` inside string or object literal default values split or cut fragments;
//   - destructured parameters do not have a single name;
//   - generic type arguments with commas, like `Map<K, V>`, are split.
package signature
