package strutil

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestMaskSensitiveData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"abc", "***"},
		{"abcd", "abcd***"},
		{"123456789012", "1234***"},
		{"123456789:ABC-DEF1234ghIkl", "1234***hIkl"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, MaskSensitiveData(tt.input), "Input: %s", tt.input)
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		limit    int
		expected string
	}{
		{"Short", "ready", 10, "ready"},
		{"Exact", "ready", 5, "ready"},
		{"Long", "connection refused", 10, "connect..."},
		{"Korean", "대상 서비스에 연결할 수 없습니다", 8, "대상 서비..."},
		{"Tiny Limit", "abcdef", 2, "ab"},
		{"Zero Limit", "abc", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.limit)
			assert.Equal(t, tt.expected, got)
			assert.LessOrEqual(t, utf8.RuneCountInString(got), max(tt.limit, 0))
		})
	}
}

func TestSafeSplit(t *testing.T) {
	t.Parallel()

	t.Run("Short string", func(t *testing.T) {
		chunk, rest := SafeSplit("hello", 10)
		assert.Equal(t, "hello", chunk)
		assert.Empty(t, rest)
	})

	t.Run("ASCII", func(t *testing.T) {
		chunk, rest := SafeSplit("hello world", 5)
		assert.Equal(t, "hello", chunk)
		assert.Equal(t, " world", rest)
	})

	t.Run("Multibyte boundary", func(t *testing.T) {
		// "가"는 3바이트입니다. 4바이트에서 자르면 두 번째 글자 중간이므로 첫 글자까지만 포함합니다.
		chunk, rest := SafeSplit("가나다", 4)
		assert.Equal(t, "가", chunk)
		assert.Equal(t, "나다", rest)
		assert.True(t, utf8.ValidString(chunk))
		assert.True(t, utf8.ValidString(rest))
	})
}

func TestSplitLines(t *testing.T) {
	t.Parallel()

	t.Run("Fits", func(t *testing.T) {
		assert.Equal(t, []string{"a\nb"}, SplitLines("a\nb", 10))
	})

	t.Run("Line boundaries", func(t *testing.T) {
		msg := strings.Join([]string{"aaaa", "bbbb", "cccc"}, "\n")
		assert.Equal(t, []string{"aaaa\nbbbb", "cccc"}, SplitLines(msg, 9))
	})

	t.Run("Oversized line", func(t *testing.T) {
		msg := "head\n" + strings.Repeat("x", 25) + "\ntail"
		chunks := SplitLines(msg, 10)

		for _, c := range chunks {
			assert.LessOrEqual(t, len(c), 10)
		}
		assert.Equal(t, "head", chunks[0])
		assert.Equal(t, strings.Repeat("x", 10), chunks[1])
		assert.Equal(t, strings.Repeat("x", 10), chunks[2])
		assert.Equal(t, "xxxxx\ntail", chunks[3])
	})

	t.Run("Korean content stays valid", func(t *testing.T) {
		msg := strings.Repeat("가", 100)
		for _, c := range SplitLines(msg, 50) {
			assert.LessOrEqual(t, len(c), 50)
			assert.True(t, utf8.ValidString(c))
		}
	})
}
