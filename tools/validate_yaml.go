// validate_yaml 校验 data/ 下的应用配置与全部主题
//
// 用法（项目根目录）：
//
//	go run tools/validate_yaml.go
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/decker502/modfly/pkg/config"
	"github.com/decker502/modfly/pkg/render"
)

func main() {
	failed := 0

	if _, err := config.LoadAppConfig(config.DefaultAppConfigPath); err != nil {
		fmt.Printf("❌ %s: %v\n", config.DefaultAppConfigPath, err)
		failed++
	} else {
		fmt.Printf("✅ %s\n", config.DefaultAppConfigPath)
	}

	paths, err := filepath.Glob(filepath.Join(config.ThemeDir, "*.yaml"))
	if err != nil {
		fmt.Printf("❌ 列出主题失败: %v\n", err)
		os.Exit(1)
	}
	for _, p := range paths {
		cfg, err := config.LoadThemeConfig(p)
		if err == nil {
			// 编译一次，浮尘描述等运行期才解析的字段也要检查
			_, err = render.CompileTheme(cfg)
		}
		if err != nil {
			fmt.Printf("❌ %s: %v\n", p, err)
			failed++
			continue
		}
		fmt.Printf("✅ %s (mode=%s)\n", p, cfg.Mode)
	}

	if failed > 0 {
		fmt.Printf("❌ 有 %d 个文件校验失败\n", failed)
		os.Exit(1)
	}
	fmt.Printf("✅ 共 %d 个文件全部通过\n", len(paths)+1)
}
