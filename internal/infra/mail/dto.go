package mail

type AccessEmailData struct {
	FirstName string
	Link      string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
