//go:build !smoothdebug

package smooth

const debugMatrices = false
