//go:build bridge_unchecked

package codec

const checked = false
