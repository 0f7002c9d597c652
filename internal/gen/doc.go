// Package gen owns codec generation for aggregate wire types.
//
// Ownership boundary:
// - reading //mcgen: directives and struct tags from Go source
// - building per-type shape manifests (fields, variants, version gates)
// - rendering Encode/Decode and EncodeVersioned/DecodeVersioned methods
//
// Generation is structural. Field names never reach the wire and no
// reflection runs at encode or decode time.
//
// Directives:
//
//	//mcgen:struct [since=R] [until=R]
//	//mcgen:packet id=N [since=R] [until=R]
//	//mcgen:enum
//	//mcgen:union VariantA VariantB ...
//
// Field tags:
//
//	`mc:"since=R,until=R"`
package gen
