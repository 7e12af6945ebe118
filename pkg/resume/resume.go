// Package resume 定义简历数据模型并负责加载
//
// 简历数据是只读的静态结构，由页面布局（pkg/page）和托管服务器（cmd/server）使用，
// 动画核心（粒子背景、自定义光标）不依赖它。
package resume

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath 内嵌简历数据路径
const DefaultPath = "data/resume.yaml"

// Data 简历数据
type Data struct {
	Name           string          `yaml:"name" json:"name"`
	Title          string          `yaml:"title" json:"title"`
	Summary        string          `yaml:"summary" json:"summary"`
	Contact        Contact         `yaml:"contact" json:"contact"`
	Experience     []Experience    `yaml:"experience" json:"experience"`
	Education      []Education     `yaml:"education" json:"education"`
	Skills         []Skill         `yaml:"skills" json:"skills"`
	Certifications []Certification `yaml:"certifications" json:"certifications"`
	Projects       []Project       `yaml:"projects" json:"projects"`
	Languages      []string        `yaml:"languages" json:"languages"`
	Clubs          []string        `yaml:"clubs" json:"clubs"`
}

// Contact 联系方式
type Contact struct {
	Phone    string `yaml:"phone" json:"phone"`
	Email    string `yaml:"email" json:"email"`
	Location string `yaml:"location" json:"location"`
	LinkedIn string `yaml:"linkedin" json:"linkedin"`
}

// Experience 工作/任职经历
type Experience struct {
	Role        string   `yaml:"role" json:"role"`
	Company     string   `yaml:"company" json:"company"`
	Period      string   `yaml:"period" json:"period"`
	Description []string `yaml:"description" json:"description"`
}

// Education 教育经历
type Education struct {
	Institution string   `yaml:"institution" json:"institution"`
	Degree      string   `yaml:"degree" json:"degree"`
	Period      string   `yaml:"period" json:"period"`
	Description []string `yaml:"description" json:"description"`
}

// Skill 技能
type Skill struct {
	Name string `yaml:"name" json:"name"`
}

// Certification 证书
type Certification struct {
	Title string `yaml:"title" json:"title"`
}

// Project 项目经历
// Problem、Skill、Tools 为可选字段，为空时页面不显示对应行
type Project struct {
	Title   string `yaml:"title" json:"title"`
	Focus   string `yaml:"focus" json:"focus"`
	Problem string `yaml:"problem,omitempty" json:"problem,omitempty"`
	Role    string `yaml:"role" json:"role"`
	Skill   string `yaml:"skill,omitempty" json:"skill,omitempty"`
	Tools   string `yaml:"tools,omitempty" json:"tools,omitempty"`
	Result  string `yaml:"result" json:"result"`
}

// Parse 解析 YAML 格式的简历数据并校验
func Parse(data []byte) (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse resume: %w", err)
	}

	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid resume: %w", err)
	}

	return &d, nil
}

// Load 从文件系统加载简历数据
func Load(path string) (*Data, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume: %w", err)
	}
	return Parse(data)
}

// Validate 校验必填字段
func (d *Data) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("name is required")
	}
	for i, e := range d.Experience {
		if e.Role == "" {
			return fmt.Errorf("experience[%d]: role is required", i)
		}
	}
	for i, e := range d.Education {
		if e.Institution == "" {
			return fmt.Errorf("education[%d]: institution is required", i)
		}
	}
	for i, s := range d.Skills {
		if s.Name == "" {
			return fmt.Errorf("skills[%d]: name is required", i)
		}
	}
	for i, p := range d.Projects {
		if p.Title == "" {
			return fmt.Errorf("projects[%d]: title is required", i)
		}
	}
	return nil
}
