// Package norm canonicaliza tallas, códigos y fechas para que las claves
// (modelo, talla) sean estables independientemente de cómo llegue el dato
// (Excel, consola o API).
package norm

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldAccents elimina diacríticos ("ÚNICA" -> "UNICA") para comparar alias.
var foldAccents = runes.Remove(runes.In(unicode.Mn))

func stripAccents(s string) string {
	out, _, err := transformString(s)
	if err != nil {
		return s
	}
	return out
}

func transformString(s string) (string, int, error) {
	decomposed := norm.NFD.String(s)
	folded, n, err := transform.String(foldAccents, decomposed)
	if err != nil {
		return "", n, err
	}
	return norm.NFC.String(folded), n, nil
}

// Alias aceptados para talla única.
var singleSizeAliases = map[string]bool{
	"U": true, "UNICA": true, "UNITALLA": true, "ONE SIZE": true, "OS": true, "TU": true,
}

var numericSize = regexp.MustCompile(`^\d+(\.\d+)?$`)

// Size normaliza representaciones de talla:
//   - "36.0", 36.0 textual o "36," -> "36"
//   - " 36 , 5 " -> "36.5" (coma decimal se estandariza a punto)
//   - "xs" -> "XS"; "única"/"TU"/"one size" -> "U"
//   - códigos tipo "T36" se mantienen en mayúsculas.
func Size(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	s = strings.TrimSuffix(s, ".")

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if f == float64(int64(f)) {
			return strconv.FormatInt(int64(f), 10)
		}
		// número con decimales reales (36.5) se deja tal cual
		return s
	}

	if strings.HasSuffix(s, ".0") && isDigits(s[:len(s)-2]) {
		return s[:len(s)-2]
	}

	if singleSizeAliases[stripAccents(s)] {
		return "U"
	}
	return s
}

// Code normaliza códigos numérico-textuales (pedido, albarán, etc.):
//   - 1234.0 / "1234.0" -> "1234"
//   - "  00123 " -> "00123" (respeta ceros a la izquierda)
//   - "" se mantiene vacío.
func Code(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	dotted := strings.ReplaceAll(s, ",", ".")
	if f, err := strconv.ParseFloat(dotted, 64); err == nil && f == float64(int64(f)) {
		if isDigits(strings.Replace(dotted, ".", "", 1)) {
			return strconv.FormatInt(int64(f), 10)
		}
	}
	if strings.HasSuffix(s, ".0") && isDigits(s[:len(s)-2]) {
		return s[:len(s)-2]
	}
	return s
}

// Model normaliza un código de modelo (mayúsculas, sin espacios laterales).
func Model(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// Formatos de fecha aceptados además del ISO.
var dmyDate = regexp.MustCompile(`^\s*(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})`)

// Date normaliza un valor de fecha a "YYYY-MM-DD". Acepta ISO (con o sin
// hora), DD/MM/YYYY y DD-MM-YYYY (año de 2 o 4 cifras). Devuelve "" si no se
// puede interpretar.
func Date(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	token := strings.Fields(s)[0]
	if t, err := time.Parse("2006-01-02", token); err == nil {
		return t.Format("2006-01-02")
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format("2006-01-02")
	}
	if m := dmyDate.FindStringSubmatch(s); m != nil {
		d, _ := strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		y, _ := strconv.Atoi(m[3])
		if len(m[3]) == 2 {
			y += 2000
		}
		t := time.Date(y, time.Month(mo), d, 0, 0, 0, 0, time.UTC)
		// time.Date normaliza desbordes (32/01 -> 01/02); los rechazamos
		if t.Day() != d || int(t.Month()) != mo {
			return ""
		}
		return t.Format("2006-01-02")
	}
	return ""
}

// Today devuelve la fecha actual en el formato del sistema.
func Today() string {
	return time.Now().Format("2006-01-02")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
