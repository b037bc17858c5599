package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportPath(t *testing.T) {
	tests := []struct {
		name     string
		outFlag  string
		repoName string
		expected string
	}{
		{"默认按仓库名命名", "", "Hello-World", "Hello-World_report.md"},
		{"显式路径原样使用", "out/analysis.md", "Hello-World", "out/analysis.md"},
		{"横线表示不落盘", "-", "Hello-World", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, reportPath(tt.outFlag, tt.repoName))
		})
	}
}
