package postgres

import (
	repo "github.com/waibhq/waib/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	Users           repo.Users
	Templates       repo.Templates
	ContactMessages repo.ContactMessages
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users:           &usersRepo{pool},
		Templates:       &templatesRepo{pool},
		ContactMessages: &contactMessagesRepo{pool},
	}
}
