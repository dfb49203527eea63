package postgres

import (
	applicationdomain "github.com/Deepsoni5/kucash-sub001/internal/domain/application"
	contactdomain "github.com/Deepsoni5/kucash-sub001/internal/domain/contact"
	customerdomain "github.com/Deepsoni5/kucash-sub001/internal/domain/customer"
	postdomain "github.com/Deepsoni5/kucash-sub001/internal/domain/post"
	"github.com/Deepsoni5/kucash-sub001/internal/jobs"
)

var (
	_ applicationdomain.Repository       = (*ApplicationRepository)(nil)
	_ applicationdomain.OutboxRepository = (*OutboxRepository)(nil)
	_ customerdomain.Repository          = (*CustomerRepository)(nil)
	_ postdomain.Repository              = (*PostRepository)(nil)
	_ contactdomain.Repository           = (*ContactRepository)(nil)
	_ jobs.OutboxRepository              = (*OutboxRepository)(nil)
	_ jobs.Enqueuer                      = (*OutboxRepository)(nil)
)
