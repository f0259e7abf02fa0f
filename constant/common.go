package constant

// DateLayout is the wire and storage format for plain dates
// (required_date, scheduled_date, expiry_date).
const DateLayout = "2006-01-02"
