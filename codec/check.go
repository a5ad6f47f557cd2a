//go:build !bridge_unchecked

package codec

// checked enables the capacity assertions in the engine and glue helpers.
const checked = true
