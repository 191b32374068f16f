package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// MdToJSONCommand converts a Markdown file's contents into a JSON-string
// escaped form, ready to paste as a hotspot description value.
type MdToJSONCommand struct {
	FilePath string
	Copy     bool
}

func NewMdToJSONCommand() *MdToJSONCommand {
	return &MdToJSONCommand{}
}

func (cmd *MdToJSONCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("md-to-json", flag.ExitOnError)

	fs.BoolVar(&cmd.Copy, "copy", false, "Copy the result to the system clipboard")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s md-to-json <file.md> [-copy]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Convert a Markdown file to a JSON-escaped string.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("required argument <file.md> not provided")
	}
	cmd.FilePath = fs.Arg(0)

	return nil
}

// EscapeMarkdown turns raw file contents into the JSON-string-escaped form:
// the marshalled string without its surrounding quotes, minus a single
// trailing newline escape if present.
func EscapeMarkdown(content string) string {
	encoded, _ := json.Marshal(content)
	escaped := string(encoded[1 : len(encoded)-1])
	return strings.TrimSuffix(escaped, `\n`)
}

func (cmd *MdToJSONCommand) Run() error {
	raw, err := os.ReadFile(cmd.FilePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", cmd.FilePath, err)
	}

	escaped := EscapeMarkdown(string(raw))

	ruler := strings.Repeat("=", 60)
	fmt.Println()
	fmt.Println(ruler)
	fmt.Println("COPY EVERYTHING BETWEEN THE LINES BELOW:")
	fmt.Println(ruler)
	fmt.Println()
	fmt.Println(escaped)
	fmt.Println()
	fmt.Println(ruler)
	fmt.Println()

	if cmd.Copy {
		if err := copyToClipboard(escaped); err != nil {
			fmt.Println("Could not copy to clipboard:", err)
		} else {
			fmt.Println("Copied to clipboard!")
			fmt.Println("Now paste it as the \"description\" value in your JSON.")
		}
	} else {
		fmt.Println("Tip: Use the -copy flag to copy directly to the clipboard")
	}

	return nil
}

func copyToClipboard(text string) error {
	for _, candidate := range [][]string{{"pbcopy"}, {"xclip", "-selection", "clipboard"}, {"wl-copy"}} {
		if _, err := exec.LookPath(candidate[0]); err != nil {
			continue
		}
		c := exec.Command(candidate[0], candidate[1:]...)
		c.Stdin = strings.NewReader(text)
		return c.Run()
	}
	return fmt.Errorf("no clipboard utility found")
}
