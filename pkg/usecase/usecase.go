package usecase

import (
	"github.com/m-mizutani/livegit/pkg/domain/interfaces"
	"github.com/m-mizutani/livegit/pkg/infra"
	"golang.org/x/sync/singleflight"
)

type UseCase struct {
	clients *infra.Clients

	// activity coalesces concurrent BuildActivity calls per repository
	activity singleflight.Group
	// export does the same for ExportActivity
	export singleflight.Group
}

var _ interfaces.UseCase = (*UseCase)(nil)

func New(clients *infra.Clients) *UseCase {
	return &UseCase{
		clients: clients,
	}
}
