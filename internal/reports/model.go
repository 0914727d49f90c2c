package reports

import "time"

// Report is a single hostel-visit record. The optional columns are pointers so
// a missing value round-trips as SQL NULL / JSON null.
type Report struct {
	ID                     int64     `json:"id"`
	TeacherName            string    `json:"teacher_name"`
	SubordinateTeacherName string    `json:"subordinate_teacher_name"`
	HostelName             string    `json:"hostel_name"`
	GeneralComments        *string   `json:"general_comments"`
	MaintenanceRequired    *string   `json:"maintenance_required"`
	Complaints             *string   `json:"complaints"`
	ImageURL               *string   `json:"image_url"`
	CreatedAt              time.Time `json:"created_at"`
}
