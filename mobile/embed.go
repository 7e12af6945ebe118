//go:build mobile

// embed.go - 移动端数据嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// //go:embed 只能嵌入当前包目录下的文件，构建前需要把
// data/resume.yaml 和 data/config 复制到 mobile/data：
//
//	mkdir -p mobile/data && cp -r data/resume.yaml data/config mobile/data/
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed data/resume.yaml data/config
var dataFS embed.FS
