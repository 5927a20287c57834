package printer

import (
	"bytes"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ESC/POS command bytes
const (
	ESC = 0x1B
	GS  = 0x1D
	LF  = 0x0A
)

// Text alignment
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Character size
const (
	FontNormal = 0x00
	FontDouble = 0x11
	FontWide   = 0x10
	FontTall   = 0x01
)

// Document builds an ESC/POS byte stream.
// Text is folded to ASCII because cheap thermal heads lack a Vietnamese code page.
type Document struct {
	buf   bytes.Buffer
	width int
}

// NewDocument creates a document for a paper width in characters
// (32 for 58mm paper, 48 for 80mm).
func NewDocument(charWidth int) *Document {
	if charWidth <= 0 {
		charWidth = 32
	}
	d := &Document{width: charWidth}
	d.Init()
	return d
}

// Width returns the line width in characters
func (d *Document) Width() int { return d.width }

// Init sends ESC @.
func (d *Document) Init() *Document {
	d.buf.Write([]byte{ESC, '@'})
	return d
}

func (d *Document) LineFeed() *Document {
	d.buf.WriteByte(LF)
	return d
}

func (d *Document) FeedLines(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.WriteByte(LF)
	}
	return d
}

func (d *Document) SetAlign(align int) *Document {
	d.buf.Write([]byte{ESC, 'a', byte(align)})
	return d
}

func (d *Document) SetBold(on bool) *Document {
	b := byte(0)
	if on {
		b = 1
	}
	d.buf.Write([]byte{ESC, 'E', b})
	return d
}

func (d *Document) SetFontSize(size byte) *Document {
	d.buf.Write([]byte{GS, '!', size})
	return d
}

// Text writes one line.
func (d *Document) Text(s string) *Document {
	d.buf.WriteString(Fold(s))
	d.buf.WriteByte(LF)
	return d
}

// Separator prints a full-width rule.
func (d *Document) Separator(char byte) *Document {
	d.buf.WriteString(strings.Repeat(string(char), d.width))
	d.buf.WriteByte(LF)
	return d
}

// KeyValue prints key on the left and value flush right.
func (d *Document) KeyValue(key, value string) *Document {
	d.writePadded(Fold(key), Fold(value))
	return d
}

// ItemLine prints the product name on its own line when it does not fit
// next to the amounts, then "qty x price ... subtotal".
func (d *Document) ItemLine(name string, qty int, price, subtotal int64) *Document {
	name = Fold(name)
	detail := strconv.Itoa(qty) + " x " + FormatVND(price)
	amount := FormatVND(subtotal)

	if utf8.RuneCountInString(name)+utf8.RuneCountInString(amount)+1 <= d.width && qty == 1 {
		d.writePadded(name, amount)
		return d
	}
	d.buf.WriteString(truncate(name, d.width))
	d.buf.WriteByte(LF)
	d.writePadded("  "+detail, amount)
	return d
}

func (d *Document) writePadded(left, right string) {
	spaces := d.width - utf8.RuneCountInString(left) - utf8.RuneCountInString(right)
	if spaces < 1 {
		spaces = 1
	}
	d.buf.WriteString(left)
	d.buf.WriteString(strings.Repeat(" ", spaces))
	d.buf.WriteString(right)
	d.buf.WriteByte(LF)
}

// Cut sends a full cut.
func (d *Document) Cut() *Document {
	d.buf.Write([]byte{GS, 'V', 0x00})
	return d
}

func (d *Document) PartialCut() *Document {
	d.buf.Write([]byte{GS, 'V', 0x01})
	return d
}

// Bytes returns the accumulated stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}

func (d *Document) Reset() *Document {
	d.buf.Reset()
	d.Init()
	return d
}

// Fold strips diacritics so "Bùi Thị Xuân" prints as "Bui Thi Xuan".
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return strings.NewReplacer("đ", "d", "Đ", "D").Replace(out)
}

// FormatVND renders an amount with dot thousands separators and a trailing
// currency sign, e.g. 45000 -> "45.000d".
func FormatVND(amount int64) string {
	return GroupThousands(amount) + "d"
}

// GroupThousands renders 1234567 as "1.234.567".
func GroupThousands(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	digits := strconv.FormatInt(n, 10)
	var b strings.Builder
	b.WriteString(sign)
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	r := []rune(s)
	return string(r[:width])
}
