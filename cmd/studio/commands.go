package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mirae/creator-studio-go/internal/app"
	"github.com/mirae/creator-studio-go/internal/domain"
	"github.com/mirae/creator-studio-go/internal/store"
)

func newRootCommand(c *app.Container) *cobra.Command {
	root := &cobra.Command{
		Use:           "studio",
		Short:         "AI 创作助手：灵感分析 → 文案生成 → 配图美化",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newAnalyzeCommand(c),
		newGenerateCommand(c),
		newBeautifyCommand(c),
		newRunCommand(c),
		newConfigCommand(c),
	)

	return root
}

func newAnalyzeCommand(c *app.Container) *cobra.Command {
	var platform string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "分析灵感素材，提取关键词与核心观点",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args)
			if err != nil {
				return err
			}

			result, err := c.Analyzer.Analyze(cmd.Context(), input, domain.Platform(platform))
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			fmt.Fprintln(cmd.OutOrStdout(), c.Formatter.FormatAnalysis(result))
			return nil
		},
	}

	cmd.Flags().StringVar(&platform, "platform", string(domain.PlatformXiaohongshu), "目标平台")
	cmd.Flags().BoolVar(&asJSON, "json", false, "以 JSON 输出（可作为 generate 的输入）")
	return cmd
}

func newGenerateCommand(c *app.Container) *cobra.Command {
	var analysisPath string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "基于分析结果生成 3 套差异化文案方案",
		RunE: func(cmd *cobra.Command, args []string) error {
			analysis, err := readAnalysis(analysisPath)
			if err != nil {
				return err
			}

			result, err := c.Generator.Generate(cmd.Context(), analysis.Platform, analysis.Style, analysis.Keywords, analysis.CoreViews)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			fmt.Fprintln(cmd.OutOrStdout(), c.Formatter.FormatVariants(result))
			return nil
		},
	}

	cmd.Flags().StringVar(&analysisPath, "analysis", "", "analyze --json 输出的文件路径")
	cmd.Flags().BoolVar(&asJSON, "json", false, "以 JSON 输出（可作为 beautify 的输入）")
	_ = cmd.MarkFlagRequired("analysis")
	return cmd
}

func newBeautifyCommand(c *app.Container) *cobra.Command {
	var analysisPath, generationPath string
	var variantID int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "beautify",
		Short: "为选定文案生成实拍指导与 AI 绘图指令",
		RunE: func(cmd *cobra.Command, args []string) error {
			analysis, err := readAnalysis(analysisPath)
			if err != nil {
				return err
			}

			var generation domain.GenerationResult
			if err := readJSONFile(generationPath, &generation); err != nil {
				return err
			}
			if len(generation.Variants) == 0 {
				return fmt.Errorf("generation file contains no variants")
			}

			variant := generation.Variants[0]
			for _, v := range generation.Variants {
				if v.ID == variantID {
					variant = v
					break
				}
			}

			result, err := c.Beautifier.Beautify(cmd.Context(), domain.BeautifyInput{
				Platform: analysis.Platform,
				Style:    analysis.Style,
				Title:    variant.Title,
				Body:     variant.Body,
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			fmt.Fprintln(cmd.OutOrStdout(), c.Formatter.FormatBeautify(result))
			return nil
		},
	}

	cmd.Flags().StringVar(&analysisPath, "analysis", "", "analyze --json 输出的文件路径")
	cmd.Flags().StringVar(&generationPath, "generation", "", "generate --json 输出的文件路径")
	cmd.Flags().IntVar(&variantID, "variant", 0, "选定的方案 id（默认第一套）")
	cmd.Flags().BoolVar(&asJSON, "json", false, "以 JSON 输出")
	_ = cmd.MarkFlagRequired("analysis")
	_ = cmd.MarkFlagRequired("generation")
	return cmd
}

func newRunCommand(c *app.Container) *cobra.Command {
	var platform, outPath string
	var variantID int

	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "一次性执行完整流水线并导出创作方案",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args)
			if err != nil {
				return err
			}

			result, err := c.Pipeline.Run(cmd.Context(), input, domain.Platform(platform), variantID)
			if err != nil {
				return err
			}

			doc := c.Formatter.FormatPipeline(result)
			if outPath != "" {
				if err := os.WriteFile(outPath, []byte(doc), 0644); err != nil {
					return fmt.Errorf("failed to write export: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "已导出到 %s\n", outPath)
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), doc)
			return nil
		},
	}

	cmd.Flags().StringVar(&platform, "platform", string(domain.PlatformXiaohongshu), "目标平台")
	cmd.Flags().IntVar(&variantID, "variant", 0, "进入配图阶段的方案 id（默认第一套）")
	cmd.Flags().StringVar(&outPath, "out", "", "导出 markdown 文件路径")
	return cmd
}

var settingKeys = map[string]string{
	"key":      store.KeyAPIKey,
	"base-url": store.KeyBaseURL,
	"model":    store.KeyModel,
}

func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "管理持久化的 API 设置覆盖项",
	}

	setCmd := &cobra.Command{
		Use:   "set {key|base-url|model} VALUE",
		Short: "保存一项设置覆盖",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			storeKey, ok := settingKeys[args[0]]
			if !ok {
				return fmt.Errorf("unknown setting %q (expected key, base-url or model)", args[0])
			}
			if strings.TrimSpace(args[1]) == "" {
				return fmt.Errorf("value must not be empty (use \"config clear\" to remove)")
			}
			if err := c.Settings.Set(cmd.Context(), storeKey, args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "已保存 %s\n", args[0])
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear {key|base-url|model|all}",
		Short: "清除设置覆盖，恢复环境默认值",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "all" {
				for _, storeKey := range settingKeys {
					if err := c.Settings.Clear(cmd.Context(), storeKey); err != nil {
						return err
					}
				}
				fmt.Fprintln(cmd.OutOrStdout(), "已清除全部覆盖项")
				return nil
			}
			storeKey, ok := settingKeys[args[0]]
			if !ok {
				return fmt.Errorf("unknown setting %q (expected key, base-url, model or all)", args[0])
			}
			if err := c.Settings.Clear(cmd.Context(), storeKey); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "已清除 %s\n", args[0])
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "显示当前生效的配置",
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := c.Resolver.Resolve(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "API Key:  %s\n", maskKey(resolved.APIKey))
			fmt.Fprintf(cmd.OutOrStdout(), "Base URL: %s\n", resolved.BaseURL)
			fmt.Fprintf(cmd.OutOrStdout(), "Model:    %s\n", resolved.Model)
			return nil
		},
	}

	cmd.AddCommand(setCmd, clearCmd, showCmd)
	return cmd
}

func readInput(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func readAnalysis(path string) (*domain.AnalysisResult, error) {
	var analysis domain.AnalysisResult
	if err := readJSONFile(path, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

func readJSONFile(path string, dest any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func maskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "****" + key[len(key)-4:]
}
