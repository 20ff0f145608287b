// inspect_params 沿取模序列打印每一步推导出的参数包
//
// 用法:
//
//	go run ./cmd/inspect_params --seed 500 --steps 10
//
// 输出为 YAML 文档流（每步一个文档）；任一参数包校验失败时退出码为 1。
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/modfly/pkg/params"
	"github.com/decker502/modfly/pkg/sequence"
)

type entry struct {
	Step   int           `yaml:"step"`
	Bundle params.Bundle `yaml:"bundle"`
	Error  string        `yaml:"error,omitempty"`
}

func main() {
	seed := flag.Int("seed", sequence.DefaultInitial, "起始种子")
	steps := flag.Int("steps", 10, "步数（不含起点）")
	decrement := flag.Int("decrement", sequence.DefaultDecrement, "每步减去的值")
	flag.Parse()

	if *steps < 0 {
		fmt.Println("用法: go run ./cmd/inspect_params --seed <n> --steps <n>")
		os.Exit(2)
	}

	cycle := sequence.New(*seed, *decrement, params.SeedRange, sequence.DefaultHistoryCap)
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)

	failed := 0
	for i := 0; i <= *steps; i++ {
		if i > 0 {
			cycle.Step()
		}
		e := entry{Step: cycle.StepCount(), Bundle: params.Derive(cycle.Current())}
		if want := cycle.ValueAtStep(i, cycle.Initial()); want != cycle.Current() {
			e.Error = fmt.Sprintf("sequence drifted: got %d, want %d", cycle.Current(), want)
		} else if err := e.Bundle.Validate(); err != nil {
			e.Error = err.Error()
		}
		if e.Error != "" {
			failed++
		}
		if err := enc.Encode(e); err != nil {
			log.Fatalf("编码失败: %v", err)
		}
	}
	if err := enc.Close(); err != nil {
		log.Fatalf("编码失败: %v", err)
	}

	fmt.Fprintf(os.Stderr, "共 %d 个参数包，访问 %d 个不同种子，%d 个校验失败\n",
		*steps+1, cycle.UniqueVisited(), failed)
	if failed > 0 {
		os.Exit(1)
	}
}
