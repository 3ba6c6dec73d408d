package sim

import "skoll/internal/common"

const (
	symbolBase  = 26
	symbolWidth = 4
)

// SymbolName renders index as a fixed-width four-digit base-26 lowercase
// string, digit zero being 'a'. Purely cosmetic; the engine only needs
// equality and hashing. Names are unique for indexes below 26^4.
func SymbolName(index uint) common.Symbol {
	var buf [symbolWidth]byte
	for i := symbolWidth - 1; i >= 0; i-- {
		buf[i] = byte('a' + index%symbolBase)
		index /= symbolBase
	}
	return common.Symbol(buf[:])
}

// Symbols lists the first count symbol names in index order.
func Symbols(count uint) []common.Symbol {
	symbols := make([]common.Symbol, count)
	for i := range symbols {
		symbols[i] = SymbolName(uint(i))
	}
	return symbols
}
