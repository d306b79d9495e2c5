package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/gookit/color"

	"pngstash/stego"
)

type hideCmd struct {
	Input   string `arg:"" type:"existingfile" help:"png file to hide the message in"`
	Type    string `arg:"" help:"4-letter chunk type to store the message under"`
	Message string `arg:"" help:"message to hide"`
	Output  string `short:"o" placeholder:"FILE" help:"write the result here instead of rewriting the input"`
}

func (c *hideCmd) Run() error {
	raw, err := os.ReadFile(c.Input)
	if err != nil {
		return err
	}
	out, err := stego.Hide(raw, c.Type, []byte(c.Message))
	if err != nil {
		return err
	}
	dest := c.Output
	if dest == "" {
		dest = c.Input
	}
	if err := os.WriteFile(dest, out, 0o644); err != nil {
		return err
	}
	color.Green.Printf("hid %d bytes in a %s chunk of %s\n", len(c.Message), c.Type, dest)
	return nil
}

type extractCmd struct {
	Input string `arg:"" type:"existingfile" help:"png file to search"`
	Type  string `arg:"" help:"chunk type the message was stored under"`
}

func (c *extractCmd) Run() error {
	raw, err := os.ReadFile(c.Input)
	if err != nil {
		return err
	}
	message, err := stego.Extract(raw, c.Type)
	if err != nil {
		return err
	}
	fmt.Println(message)
	return nil
}

type removeCmd struct {
	Input  string `arg:"" type:"existingfile" help:"png file to clean"`
	Type   string `arg:"" help:"chunk type to remove"`
	Output string `short:"o" placeholder:"FILE" help:"write the result here instead of rewriting the input"`
}

func (c *removeCmd) Run() error {
	raw, err := os.ReadFile(c.Input)
	if err != nil {
		return err
	}
	out, err := stego.Remove(raw, c.Type)
	if err != nil {
		return err
	}
	dest := c.Output
	if dest == "" {
		dest = c.Input
	}
	if err := os.WriteFile(dest, out, 0o644); err != nil {
		return err
	}
	color.Green.Printf("removed the first %s chunk from %s\n", c.Type, dest)
	return nil
}

type printCmd struct {
	Input string `arg:"" type:"existingfile" help:"png file to list"`
}

func (c *printCmd) Run() error {
	raw, err := os.ReadFile(c.Input)
	if err != nil {
		return err
	}
	infos, err := stego.ListChunks(raw)
	if err != nil {
		return err
	}
	for _, info := range infos {
		fmt.Printf("%s %d\n", info.Type, info.Length)
	}
	return nil
}

var cli struct {
	Hide    hideCmd    `cmd:"" help:"hide a message inside a png"`
	Extract extractCmd `cmd:"" help:"recover a hidden message"`
	Remove  removeCmd  `cmd:"" help:"remove the first chunk of a given type"`
	Print   printCmd   `cmd:"" help:"list every chunk in a png"`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("pngstash"),
		kong.Description("hide, recover and remove messages stored in png ancillary chunks"),
		kong.UsageOnError())
	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "ERR: %s\n", err)
		os.Exit(1)
	}
}
