// Package settings provides the layered settings framework used to build a
// typed settings struct from several configuration sources.
//
// A settings struct is described by a [Schema]: an ordered list of [Field]
// descriptors generated once from struct tags by [FromStruct]. Every
// configuration source implements [Source] and returns a partial mapping of
// resolved field key to value. Sources are combined by a [Builder] in priority
// order (earlier sources win over later ones for the same key):
//  1. Constructor arguments ([InitSource])
//  2. Environment variables ([EnvSource])
//  3. File based sources registered by the caller (e.g. a HOCON file)
//  4. Dotenv files ([DotEnvSource])
//  5. Secrets directory ([SecretsSource])
//
// The merged mapping is bound into the destination struct; values already
// present on the destination act as defaults.
package settings
