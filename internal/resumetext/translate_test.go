package resumetext

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-builder/internal/types"
)

func TestToEnglish(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"canonical headers", "【个人简介】\n【教育背景】\n【工作经历】\n【项目经验】\n【专业技能】", "[Summary]\n[Education]\n[Work Experience]\n[Projects]\n[Skills]"},
		{"name header", "【姓名】\n张三", "[Name]\n张三"},
		{"keyword header", "【自我评价】", "[Summary]"},
		{"unknown header", "【获奖情况】", "【获奖情况】"},
		{"contact line", "电话：13800138000 | 邮箱：zhangsan@example.com", "Phone: 13800138000 | Email: zhangsan@example.com"},
		{"half-width colon", "邮箱: a@b.com", "Email: a@b.com"},
		{"labelled entry", "公司：Acme | 职位：工程师 | 时间：2020-2023", "Company: Acme | Position: 工程师 | Period: 2020-2023"},
		{"unknown label", "微信：zhangsan", "微信：zhangsan"},
		{"free text keeps words", "- 在公司负责项目的描述工作", "- 在公司负责项目的描述工作"},
		{"crlf", "【专业技能】\r\nGo", "[Skills]\nGo"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToEnglish(tt.input))
		})
	}
}

func TestToEnglish_SerializedRecord(t *testing.T) {
	rec := types.NewResumeRecord()
	rec.Name = "张三"
	rec.Phone = "13800138000"
	rec.Summary = "五年后端经验"
	rec.Skills = []string{"Go", "Kafka"}

	out := ToEnglish(Serialize(rec))

	assert.Equal(t, "张三\nPhone: 13800138000\n\n[Summary]\n五年后端经验\n\n[Skills]\nGo、Kafka\n", out)
}
