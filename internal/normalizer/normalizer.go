// Package normalizer chuẩn hóa chuỗi địa danh tiếng Việt để so khớp không dấu,
// dùng cho bộ lọc danh sách tỉnh/quận/phường.
package normalizer

import (
	"regexp"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/mozillazg/go-unidecode"
	"github.com/xrash/smetrics"
)

// Ngưỡng so khớp gần đúng
const (
	minFuzzyLen    = 4    // bộ lọc ngắn hơn không so gần đúng
	longFuzzyLen   = 9    // từ độ dài này cho phép sai 2 ký tự
	minJaroWinkler = 0.88 // Jaro-Winkler tối thiểu của cụm từ khớp
)

var reSpaces = regexp.MustCompile(`\s+`)
var rePunct = regexp.MustCompile(`[.,\-_/]+`)

// abbreviations viết tắt thường gặp khi gõ tên đơn vị hành chính, áp dụng theo thứ tự
var abbreviations = []struct{ from, to string }{
	{" tphcm ", " thanh pho ho chi minh "},
	{" tp hcm ", " thanh pho ho chi minh "},
	{" hcm ", " ho chi minh "},
	{" sai gon ", " ho chi minh "},
	{" sg ", " ho chi minh "},
	{" hn ", " ha noi "},
	{" tp ", " thanh pho "},
	{" tt ", " thi tran "},
	{" tx ", " thi xa "},
	{" q ", " quan "},
	{" h ", " huyen "},
	{" p ", " phuong "},
}

// Fold về ascii, lowercase, bỏ dấu câu và gọn khoảng trắng: "Thành phố  Hà Nội" → "thanh pho ha noi"
func Fold(s string) string {
	s = strings.ToLower(unidecode.Unidecode(s))
	s = rePunct.ReplaceAllString(s, " ")
	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}

// Expand mở rộng viết tắt trên chuỗi đã Fold: "tp hcm" → "thanh pho ho chi minh"
func Expand(folded string) string {
	r := " " + folded + " "
	for _, a := range abbreviations {
		// lặp vì các token liền nhau dùng chung khoảng trắng
		for strings.Contains(r, a.from) {
			r = strings.ReplaceAll(r, a.from, a.to)
		}
	}
	return strings.TrimSpace(reSpaces.ReplaceAllString(r, " "))
}

// Matches so khớp bộ lọc người dùng gõ với một lựa chọn, không phân biệt dấu và hoa thường.
// Không khớp chuỗi con thì thử khớp gần đúng (gõ sai 1-2 ký tự). Bộ lọc rỗng khớp mọi lựa chọn.
func Matches(filter, option string) bool {
	f := Fold(filter)
	if f == "" {
		return true
	}
	o := Fold(option)
	if strings.Contains(o, f) {
		return true
	}
	if strings.Contains(o, Expand(f)) {
		return true
	}
	return FuzzyMatch(f, o)
}

// FuzzyMatch so bộ lọc đã Fold với từng cụm từ liên tiếp cùng số từ trong lựa chọn đã Fold.
// Cụm khớp khi khoảng cách Levenshtein trong giới hạn và Jaro-Winkler đủ cao.
// Bộ lọc có chữ số không so gần đúng: "phuong 2" không được khớp "phuong 1".
func FuzzyMatch(folded, option string) bool {
	if len(folded) < minFuzzyLen || strings.ContainsAny(folded, "0123456789") {
		return false
	}
	maxDist := 1
	if len(folded) >= longFuzzyLen {
		maxDist = 2
	}

	words := strings.Fields(option)
	n := len(strings.Fields(folded))
	for i := 0; i+n <= len(words); i++ {
		window := strings.Join(words[i:i+n], " ")
		if levenshtein.ComputeDistance(folded, window) > maxDist {
			continue
		}
		if smetrics.JaroWinkler(folded, window, 0.7, 4) >= minJaroWinkler {
			return true
		}
	}
	return false
}
