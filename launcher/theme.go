package launcher

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Messages the launcher itself prints. The application's output is passed
// through untouched.
const (
	msgStarting    = "启动负载数据分析系统..."
	msgStopHint    = "应用将在浏览器中打开，按 Ctrl+C 可停止服务"
	msgStopping    = "正在停止服务..."
	msgSpawnFailed = "启动失败: "
	msgFatal       = "启动器错误: "
	msgPressEnter  = "按回车键退出..."
)

// Theme styles launcher messages. Each style renders for the stream it is
// written to, so redirected output carries no escape sequences.
type Theme struct {
	Status lipgloss.Style
	Prompt lipgloss.Style
	Notice lipgloss.Style
	Error  lipgloss.Style
}

func NewTheme(stdout, stderr io.Writer) *Theme {
	out := lipgloss.NewRenderer(stdout)
	errOut := lipgloss.NewRenderer(stderr)
	return &Theme{
		Status: out.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		Prompt: out.NewStyle().Faint(true),
		Notice: errOut.NewStyle().Foreground(lipgloss.Color("3")),
		Error:  errOut.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
	}
}
