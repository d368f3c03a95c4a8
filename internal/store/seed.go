package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/solutions-kit/os-tracker/internal/domain"
	"github.com/solutions-kit/os-tracker/internal/osnumber"
)

// seedCollection builds the single bootstrap ticket written when the backing
// medium has no record yet. It is never applied over an existing collection.
func seedCollection() []domain.Ticket {
	now := time.Now()
	return []domain.Ticket{
		{
			ID:          uuid.NewString(),
			OSNumber:    osnumber.Format(1),
			IssueDate:   now.Format(time.RFC3339),
			Deadline:    now.AddDate(0, 0, 7).Format("2006-01-02"),
			Description: "Manutenção preventiva no servidor principal",
			Notes:       "Verificar temperatura e logs de erro.",
			Status:      domain.StatusNotStarted,
			Responsible: domain.DefaultResponsible,
			Location:    "UHE SOBRADINHO",
			History: []domain.HistoryEntry{
				{
					Date:   now.Format(time.RFC3339),
					Action: "Chamado criado",
					User:   domain.DefaultResponsible,
				},
			},
		},
	}
}
