// Package hocon exposes the values of a HOCON configuration file to a typed
// settings struct.
//
// The file is parsed once per [Source] into a [Tree] of [Node] values
// ([Scalar], [Mapping], [Sequence]). The source looks every schema field up
// at the top level of the tree by its resolved key (alias, validation alias
// or name) and decodes mappings and sequences into plain Go containers.
// Dotted paths are not traversed.
//
// [Load] is the entry point: it composes the HOCON source with the other
// settings sources in the following priority order (earlier wins):
//  1. Options.Overrides (constructor arguments)
//  2. Environment variables
//  3. The HOCON file named by Options.ConfigPath or HOCON_CONFIG_PATH
//  4. Dotenv files
//  5. Secrets directory
package hocon
