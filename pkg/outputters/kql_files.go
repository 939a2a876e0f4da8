package outputters

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
	"github.com/praetorian-inc/outrider/internal/helpers"
	"github.com/praetorian-inc/outrider/internal/message"
	"github.com/praetorian-inc/outrider/pkg/kql"
	"github.com/praetorian-inc/outrider/pkg/links/options"
)

// KQLFileOutputter writes each catalog query to <output>/<id>.kql so the
// queries can be pasted into a Log Analytics workspace or Sentinel.
type KQLFileOutputter struct {
	*chain.BaseOutputter
	templates []*kql.QueryTemplate
	outputDir string
}

func NewKQLFileOutputter(configs ...cfg.Config) chain.Outputter {
	o := &KQLFileOutputter{}
	o.BaseOutputter = chain.NewBaseOutputter(o, configs...)
	return o
}

func (o *KQLFileOutputter) Initialize() error {
	o.outputDir, _ = cfg.As[string](o.Arg("output"))
	return nil
}

func (o *KQLFileOutputter) Output(val any) error {
	if template, ok := val.(*kql.QueryTemplate); ok {
		o.templates = append(o.templates, template)
	}
	return nil
}

func (o *KQLFileOutputter) Complete() error {
	if o.outputDir == "" || len(o.templates) == 0 {
		return nil
	}

	if err := helpers.EnsureOutputDir(o.outputDir); err != nil {
		return err
	}

	for _, template := range o.templates {
		path := filepath.Join(o.outputDir, template.ID+".kql")
		content := fmt.Sprintf("// %s\n// %s\n%s", template.Name, template.Description, template.Query)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write query file %s: %w", path, err)
		}
	}

	message.Success("wrote %d query files to %s", len(o.templates), o.outputDir)
	return nil
}

func (o *KQLFileOutputter) Params() []cfg.Param {
	return []cfg.Param{
		options.OutputDir(),
	}
}
