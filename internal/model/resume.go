package model

import "time"

// ResumeData is the stored result of one resume analysis. FileType is
// "pdf" or "docx"; the file itself never reaches the server, only the
// client-extracted text.
type ResumeData struct {
	FileName   string    `json:"fileName"`
	FileType   string    `json:"fileType"`
	Insights   string    `json:"insights"`
	Score      int       `json:"score"`
	AnalyzedAt time.Time `json:"analyzedAt"`
}

// BuiltResume is the resume-builder output. It is returned to the client
// and optionally archived to object storage, but never written into the
// session.
type BuiltResume struct {
	TargetRole        string             `json:"targetRole"`
	HTML              string             `json:"html"`
	AdditionalInfo    string             `json:"additionalInfo,omitempty"`
	ContactInfo       *ContactInfo       `json:"contactInfo,omitempty"`
	ProfessionalLinks *ProfessionalLinks `json:"professionalLinks,omitempty"`
	Education         []Education        `json:"education,omitempty"`
	Certifications    []Certification    `json:"certifications,omitempty"`
	Awards            []Award            `json:"awards,omitempty"`
	Languages         []SpokenLanguage   `json:"languages,omitempty"`
	FileURL           string             `json:"fileUrl,omitempty"`
	GeneratedAt       time.Time          `json:"generatedAt"`
}

type ContactInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

type ProfessionalLinks struct {
	Portfolio string `json:"portfolio,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
}

type Education struct {
	Institution    string `json:"institution"`
	Degree         string `json:"degree"`
	Field          string `json:"field,omitempty"`
	GraduationYear string `json:"graduationYear,omitempty"`
	GPA            string `json:"gpa,omitempty"`
}

type Certification struct {
	Name         string `json:"name"`
	Issuer       string `json:"issuer,omitempty"`
	IssueDate    string `json:"issueDate,omitempty"`
	ExpiryDate   string `json:"expiryDate,omitempty"`
	CredentialID string `json:"credentialId,omitempty"`
}

type Award struct {
	Title       string `json:"title"`
	Issuer      string `json:"issuer,omitempty"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
}

type SpokenLanguage struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency,omitempty"`
}
