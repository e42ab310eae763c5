package console

import (
	"time"
)

// Site is one logistics site running the attendance system. Schema names
// the MySQL schema holding the site's registry and history; Domain is the
// hostname the site's consoles are served on.
type Site struct {
	ID        int       `gorm:"primaryKey;autoIncrement;column:id"`
	Code      string    `gorm:"size:32;not null;unique;column:code"`
	Name      string    `gorm:"size:255;not null;column:name"`
	Schema    string    `gorm:"size:64;not null;unique;column:schema_name"`
	Domain    string    `gorm:"size:255;not null;unique;column:domain"`
	Timezone  string    `gorm:"size:64;not null;default:Asia/Jakarta;column:timezone"`
	Active    bool      `gorm:"not null;default:true;column:active"`
	CreatedAt time.Time `gorm:"precision:6;autoCreateTime;column:createdAt"`
	UpdatedAt time.Time `gorm:"precision:6;autoUpdateTime;column:updatedAt"`
}
