package k8s

import (
	"io"
	"text/template"

	"github.com/Masterminds/sprig"
)

// Options represent configurable parameters of the printed manifests
type Options struct {
	App         string
	Namespace   string
	Image       string
	Version     string
	Engine      string
	Port        int
	ServicePort int
	Replicas    int
}

// PrintConfig will output a k8s config to the specified writer
func (opt Options) PrintConfig(w io.Writer) error {
	for _, tmpl := range []struct {
		name string
		text string
	}{
		{"deployment", deployment},
		{"service", service},
	} {
		t, err := template.New(tmpl.name).Funcs(sprig.TxtFuncMap()).Parse(tmpl.text)
		if err != nil {
			return err
		}
		if err := t.Execute(w, opt); err != nil {
			return err
		}
	}
	return nil
}
