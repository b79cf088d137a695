package norm

import (
	"regexp"
	"sort"
	"strconv"
)

// Orden de las tallas textuales conocidas; la talla única va al final.
var textualOrder = map[string]int{
	"XXXS": 0, "XXS": 1, "XS": 2, "S": 3, "M": 4, "L": 5,
	"XL": 6, "XXL": 7, "3XL": 8, "4XL": 9, "5XL": 10, "U": 11,
}

var tPrefixSize = regexp.MustCompile(`^T(\d+(\.\d+)?)$`)

// sizeKey agrupa la clave de orden natural: primero numéricas (y "T" +
// número) por valor, luego textuales conocidas, y el resto alfabético.
type sizeKey struct {
	group int
	num   float64
	rank  int
	text  string
}

func sortKey(size string) sizeKey {
	s := Size(size)
	if numericSize.MatchString(s) {
		f, _ := strconv.ParseFloat(s, 64)
		return sizeKey{group: 0, num: f}
	}
	if m := tPrefixSize.FindStringSubmatch(s); m != nil {
		f, _ := strconv.ParseFloat(m[1], 64)
		return sizeKey{group: 0, num: f}
	}
	if rank, ok := textualOrder[s]; ok {
		return sizeKey{group: 1, rank: rank, text: s}
	}
	return sizeKey{group: 2, text: s}
}

// SizeLess indica si la talla a precede a la b en el orden natural.
func SizeLess(a, b string) bool {
	ka, kb := sortKey(a), sortKey(b)
	if ka.group != kb.group {
		return ka.group < kb.group
	}
	switch ka.group {
	case 0:
		return ka.num < kb.num
	case 1:
		return ka.rank < kb.rank
	default:
		return ka.text < kb.text
	}
}

// SortSizes ordena tallas in place según el orden natural (34, 36, 36.5,
// XS..XXL, U, resto alfabético).
func SortSizes(sizes []string) {
	sort.SliceStable(sizes, func(i, j int) bool { return SizeLess(sizes[i], sizes[j]) })
}
