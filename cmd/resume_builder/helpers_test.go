package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/llm"
)

const sampleText = `张三
电话：13800138000 | 邮箱：zhangsan@example.com

【个人简介】
五年后端开发经验，熟悉分布式系统。

【教育背景】
北京大学 | 计算机科学 | 本科 | 2012-2016

【工作经历】
Acme科技 | 高级工程师 | 2016-2021
- 主导订单系统重构，延迟降低40%

【专业技能】
Go、Kafka、PostgreSQL`

// execute runs the root command in-process with stdin and args, returning
// what it wrote to stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	for _, name := range []string{"GEMINI_API_KEY", "LOG_LEVEL", "PORT", "DATABASE_URL"} {
		t.Setenv(name, "")
	}
	if os.Getenv("STORAGE_DRIVER") != "sqlite" {
		t.Setenv("STORAGE_DRIVER", "memory")
	}

	resetFlags(rootCmd)
	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// resetFlags restores every flag to its default so package-level flag
// variables do not leak between runs.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// withClient replaces the model client for the duration of the test.
func withClient(t *testing.T, client llm.Client) {
	t.Helper()
	orig := newClient
	newClient = func(context.Context) (llm.Client, error) { return client, nil }
	t.Cleanup(func() { newClient = orig })
}

// useSQLite points storage at a fresh SQLite database.
func useSQLite(t *testing.T) {
	t.Helper()
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("STORAGE_DSN", filepath.Join(t.TempDir(), "drafts.db"))
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
