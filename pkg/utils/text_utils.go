package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MeasureFunc 返回文本在某种字体下的宽度（像素）
type MeasureFunc func(s string) float64

// FaceMeasure 基于 text/v2 字体创建测量函数
func FaceMeasure(face text.Face) MeasureFunc {
	return func(s string) float64 {
		if s == "" || face == nil {
			return 0
		}
		width, _ := text.Measure(s, face, 0)
		return width
	}
}

// WrapText 将文本按指定宽度自动换行
//
// 参数:
//   - textStr: 要换行的文本
//   - measure: 宽度测量函数
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 在空白处断行，连续空白视为一个空格
//   - 单个单词超过最大宽度时按字符强制断行
func WrapText(textStr string, measure MeasureFunc, maxWidth float64) []string {
	if textStr == "" || measure == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	words := strings.Fields(textStr)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	currentLine := ""

	for _, word := range words {
		testLine := word
		if currentLine != "" {
			testLine = currentLine + " " + word
		}

		if measure(testLine) <= maxWidth {
			currentLine = testLine
			continue
		}

		if currentLine != "" {
			lines = append(lines, currentLine)
			currentLine = ""
		}

		if measure(word) <= maxWidth {
			currentLine = word
			continue
		}

		// 超长单词：逐字符断开，最后一段留在当前行继续拼接
		pieces := breakWord(word, measure, maxWidth)
		lines = append(lines, pieces[:len(pieces)-1]...)
		currentLine = pieces[len(pieces)-1]
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return lines
}

// breakWord 按字符将单词拆成不超过 maxWidth 的片段（每段至少一个字符）
func breakWord(word string, measure MeasureFunc, maxWidth float64) []string {
	var pieces []string
	current := ""

	for len(word) > 0 {
		r, size := utf8.DecodeRuneInString(word)
		char := string(r)
		word = word[size:]

		if current != "" && measure(current+char) > maxWidth {
			pieces = append(pieces, current)
			current = char
			continue
		}
		current += char
	}

	return append(pieces, current)
}
