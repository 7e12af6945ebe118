package page

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts 页面字体
//
// 使用 Go 字体（常规 + 粗体），按字号缓存字体实例。
// 实现 Measurer，布局和渲染使用同一套字体，保证换行结果与绘制一致。
type Fonts struct {
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource
	faces   map[faceKey]*text.GoTextFace
}

type faceKey struct {
	size float64
	bold bool
}

// NewFonts 加载内置字体
func NewFonts() (*Fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load regular font: %w", err)
	}
	boldSrc, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load bold font: %w", err)
	}

	return &Fonts{
		regular: regular,
		bold:    boldSrc,
		faces:   make(map[faceKey]*text.GoTextFace),
	}, nil
}

// Face 返回指定字号和字重的字体
func (f *Fonts) Face(size float64, bold bool) *text.GoTextFace {
	key := faceKey{size: size, bold: bold}
	if face, ok := f.faces[key]; ok {
		return face
	}

	src := f.regular
	if bold {
		src = f.bold
	}
	face := &text.GoTextFace{Source: src, Size: size}
	f.faces[key] = face
	return face
}

// Measure 测量文字宽度（像素）
func (f *Fonts) Measure(s string, size float64, bold bool) float64 {
	if s == "" {
		return 0
	}
	w, _ := text.Measure(s, f.Face(size, bold), 0)
	return w
}
