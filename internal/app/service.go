package app

import (
	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"bundled-components/internal/adapters"
	"bundled-components/internal/ports"
)

type Service struct {
	Components ports.ComponentSourcePort
	Layouts    ports.TemplateSourcePort
	Pages      ports.PageSourcePort
	Reports    ports.ReportRendererPort
	Bundler    func(destination string) ports.BundlerPort
}

// NewService wires the filesystem adapters over the host filesystem. All
// paths handed to them are absolute.
func NewService() Service {
	return NewServiceWithFS(osfs.New("/"))
}

func NewServiceWithFS(fs billy.Filesystem) Service {
	return Service{
		Components: adapters.NewComponentDirAdapter(fs),
		Layouts:    adapters.NewLayoutDirAdapter(fs),
		Pages:      adapters.NewPageSourceAdapter(fs),
		Reports:    adapters.NewReportRendererAdapter(),
		Bundler: func(destination string) ports.BundlerPort {
			return adapters.NewConcatBundlerAdapter(fs, destination)
		},
	}
}
