package postgres

import (
	"gorm.io/gorm"

	"github.com/dukahub/pos-terminal-service/internal/ports"
)

type Repositories struct {
	Devices    ports.DeviceRepository
	Accounts   ports.AccountRepository
	Attendance ports.AttendanceRepository
	Shifts     ports.ShiftRepository
	Outbox     ports.OutboxRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Devices:    &deviceRepository{db: db},
		Accounts:   &accountRepository{db: db},
		Attendance: &attendanceRepository{db: db},
		Shifts:     &shiftRepository{db: db},
		Outbox:     &outboxRepository{db: db},
	}
}
