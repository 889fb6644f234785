package cli

import (
	"github.com/katalvlaran/bimatch/internal/graphio"
)

// Input holds the flag values shared by all commands.
type Input struct {
	inputPath    string
	inputFormat  string
	outputFormat string
	workers      int
	verbose      bool
}

func (i *Input) formats() (in, out graphio.Format, err error) {
	if in, err = graphio.ParseFormat(i.inputFormat); err != nil {
		return "", "", err
	}
	if out, err = graphio.ParseFormat(i.outputFormat); err != nil {
		return "", "", err
	}

	return in, out, nil
}
