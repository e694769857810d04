package cli

import (
	"github.com/sanops/zonectl/internal/domain/service"
)

func wwnMode(loose bool) service.WWNMode {
	if loose {
		return service.WWNLoose
	}
	return service.WWNStrict
}
