package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"galaxy-classify/internal/config"
	"galaxy-classify/internal/quickcode"
)

var (
	codeMode string
	codeHide []string

	encodeLSB, encodeMorph        string
	encodeRedshift, encodeAwesome bool
	encodeNucleus, encodeFailed   bool
)

var codeCmd = &cobra.Command{
	Use:   "code",
	Short: "Filter, decode or encode quick codes",
	Long: `Run the quick code codec from the shell.

Settings come from the config file; --mode and --hide override them:
  galaxy-classify code decode 12arn
  galaxy-classify code encode --lsb 1 --morph 2 -r -a
  galaxy-classify code filter "1x2y!a" --hide r,n`,
}

var codeFilterCmd = &cobra.Command{
	Use:   "filter RAW",
	Short: "Drop characters the quick input would reject",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := codeSettings()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), quickcode.FilterInput(args[0], s.Mode, s.Visibility))
		return nil
	},
}

var codeDecodeCmd = &cobra.Command{
	Use:   "decode CODE",
	Short: "Print the classification a code stands for, as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := codeSettings()
		if err != nil {
			return err
		}
		f := quickcode.Decode(args[0], s.Mode, s.Visibility)
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			quickcode.Flags
			Complete bool `json:"complete"`
		}{f, f.Complete()})
	},
}

var codeEncodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Print the canonical code for a classification",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := codeSettings()
		if err != nil {
			return err
		}
		lsb, err := parseSlot("lsb", encodeLSB)
		if err != nil {
			return err
		}
		morph, err := parseSlot("morph", encodeMorph)
		if err != nil {
			return err
		}
		f := quickcode.Flags{
			LSB:            lsb,
			Morphology:     morph,
			Awesome:        encodeAwesome,
			ValidRedshift:  encodeRedshift,
			VisibleNucleus: encodeNucleus,
			FailedFitting:  encodeFailed,
		}
		if n := f.Normalize(s.Mode, s.Visibility); n != f {
			return fmt.Errorf("classification not allowed in %s mode with the current flags: %+v", s.Mode, f)
		}
		fmt.Fprintln(cmd.OutOrStdout(), quickcode.Encode(f, s.Mode, s.Visibility))
		return nil
	},
}

func init() {
	codeCmd.PersistentFlags().StringVar(&codeMode, "mode", "", "failed fitting mode: legacy or checkbox")
	codeCmd.PersistentFlags().StringSliceVar(&codeHide, "hide", nil, "flags to hide: a (awesome), r (redshift), n (nucleus)")

	f := codeEncodeCmd.Flags()
	f.StringVar(&encodeLSB, "lsb", "", "LSB class: -1, 0 or 1 (empty for unset)")
	f.StringVar(&encodeMorph, "morph", "", "morphology: -1, 0, 1 or 2 (empty for unset)")
	f.BoolVarP(&encodeRedshift, "redshift", "r", false, "valid redshift")
	f.BoolVarP(&encodeAwesome, "awesome", "a", false, "awesome")
	f.BoolVarP(&encodeNucleus, "nucleus", "n", false, "visible nucleus")
	f.BoolVarP(&encodeFailed, "failed", "f", false, "failed fitting (checkbox mode)")

	codeCmd.AddCommand(codeFilterCmd, codeDecodeCmd, codeEncodeCmd)
}

// codeSettings reads settings from the config and applies --mode and --hide.
func codeSettings() (config.Settings, error) {
	c, err := config.Load(cfgPath)
	if err != nil {
		return config.Settings{}, err
	}
	s := c.Settings()
	if codeMode != "" {
		m, err := quickcode.ParseMode(codeMode)
		if err != nil {
			return config.Settings{}, err
		}
		s.Mode = m
	}
	for _, h := range codeHide {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "a", "awesome":
			s.Visibility.ShowAwesomeFlag = false
		case "r", "redshift":
			s.Visibility.ShowValidRedshift = false
		case "n", "nucleus":
			s.Visibility.ShowVisibleNucleus = false
		case "":
		default:
			return config.Settings{}, fmt.Errorf("--hide: unknown flag %q (want a, r or n)", h)
		}
	}
	return s, nil
}

func parseSlot(name, v string) (quickcode.Slot, error) {
	v = strings.TrimSpace(v)
	switch v {
	case "", "none", "unset":
		return quickcode.None, nil
	case "-":
		return quickcode.Some(-1), nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return quickcode.None, fmt.Errorf("--%s: %w", name, err)
	}
	return quickcode.Some(n), nil
}
