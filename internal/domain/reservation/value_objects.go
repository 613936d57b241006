package reservation

import (
	"crypto/rand"
	"io"
	"strings"
)

const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeGroupLen = 4

	// bytes at or above this are redrawn so every symbol is equally likely
	codeByteLimit = 256 - 256%len(codeAlphabet)
)

// Code is the human reservation code, PREFIX-XXXX-YYYY. Only uniqueness is
// guaranteed; nothing parses it.
type Code string

func (c Code) String() string {
	return string(c)
}

type CodeGenerator interface {
	Generate(prefix string) (Code, error)
}

type RandomCodeGenerator struct {
	reader io.Reader
}

func NewRandomCodeGenerator() *RandomCodeGenerator {
	return &RandomCodeGenerator{reader: rand.Reader}
}

func NewCodeGeneratorFrom(r io.Reader) *RandomCodeGenerator {
	return &RandomCodeGenerator{reader: r}
}

func (g *RandomCodeGenerator) Generate(prefix string) (Code, error) {
	buf := make([]byte, 0, 2*codeGroupLen)
	draw := make([]byte, 2*codeGroupLen)
	for len(buf) < cap(buf) {
		chunk := draw[:cap(buf)-len(buf)]
		if _, err := io.ReadFull(g.reader, chunk); err != nil {
			return "", err
		}
		for _, b := range chunk {
			if int(b) < codeByteLimit {
				buf = append(buf, codeAlphabet[int(b)%len(codeAlphabet)])
			}
		}
	}
	var sb strings.Builder
	sb.WriteString(strings.ToUpper(prefix))
	sb.WriteByte('-')
	sb.Write(buf[:codeGroupLen])
	sb.WriteByte('-')
	sb.Write(buf[codeGroupLen:])
	return Code(sb.String()), nil
}
