package model

// StorageSlot binds one physical location to its occupying plasmid and the
// host organism it is carried in. A row exists exactly while the slot is
// occupied; freeing the slot deletes the row.
type StorageSlot struct {
	Location  string   `gorm:"column:location;primaryKey" json:"location"`
	PlasmidID string   `gorm:"column:plasmidID" json:"id"`
	Host      string   `gorm:"column:host" json:"host"`
	Plasmid   *Plasmid `gorm:"foreignKey:PlasmidID" json:"-"`
}

func (*StorageSlot) TableName() string { return "storageLocations" }

// IDCounter is the single persisted source of numeric id suffixes.
type IDCounter struct {
	Key   string `gorm:"column:key;primaryKey"`
	Value int64  `gorm:"column:value"`
}

func (*IDCounter) TableName() string { return "idCounter" }

// Printer is the singleton label-printer registration. Registering a new
// printer replaces the previous one.
type Printer struct {
	URL      string `gorm:"column:url;primaryKey" json:"url"`
	Name     string `gorm:"column:name" json:"name"`
	Location string `gorm:"column:location" json:"location"`
	Secret   string `gorm:"column:secret" json:"-"`
}

func (*Printer) TableName() string { return "printers" }

// Session is one issued session token, revocable by deleting the row.
type Session struct {
	Token     string `gorm:"column:token;primaryKey"`
	StartTime int64  `gorm:"column:startTime"`
}

func (*Session) TableName() string { return "sessions" }

// SearchResult is one ranked row out of the full-text index.
type SearchResult struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	CreatedBy   string `json:"createdBy"`
	Description string `json:"description"`
}
