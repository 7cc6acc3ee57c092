package icons

// Icon is one entry of the static picker catalog.
type Icon struct {
	Name     string
	Category string
}

// Categories used by the picker's filter tabs. CategoryAll disables the
// filter.
const (
	CategoryAll           = "all"
	CategoryCommunication = "communication"
	CategoryMedia         = "media"
	CategoryFiles         = "files"
	CategoryDevelopment   = "development"
	CategorySystem        = "system"
	CategoryCommerce      = "commerce"
)

// catalog is the full static icon list. Names use the icon set's
// UpperCamelCase convention; search decomposes them at case boundaries.
var catalog = []Icon{
	{Name: "Mail", Category: CategoryCommunication},
	{Name: "MailOpen", Category: CategoryCommunication},
	{Name: "Inbox", Category: CategoryCommunication},
	{Name: "Send", Category: CategoryCommunication},
	{Name: "Phone", Category: CategoryCommunication},
	{Name: "MessageCircle", Category: CategoryCommunication},
	{Name: "MessageSquare", Category: CategoryCommunication},
	{Name: "AtSign", Category: CategoryCommunication},
	{Name: "Bell", Category: CategoryCommunication},
	{Name: "Rss", Category: CategoryCommunication},

	{Name: "Image", Category: CategoryMedia},
	{Name: "Camera", Category: CategoryMedia},
	{Name: "Video", Category: CategoryMedia},
	{Name: "Film", Category: CategoryMedia},
	{Name: "Music", Category: CategoryMedia},
	{Name: "Headphones", Category: CategoryMedia},
	{Name: "Mic", Category: CategoryMedia},
	{Name: "PlayCircle", Category: CategoryMedia},
	{Name: "Radio", Category: CategoryMedia},

	{Name: "File", Category: CategoryFiles},
	{Name: "FileText", Category: CategoryFiles},
	{Name: "Folder", Category: CategoryFiles},
	{Name: "FolderOpen", Category: CategoryFiles},
	{Name: "Archive", Category: CategoryFiles},
	{Name: "Clipboard", Category: CategoryFiles},
	{Name: "Book", Category: CategoryFiles},
	{Name: "BookOpen", Category: CategoryFiles},
	{Name: "Bookmark", Category: CategoryFiles},
	{Name: "Paperclip", Category: CategoryFiles},

	{Name: "Code", Category: CategoryDevelopment},
	{Name: "Terminal", Category: CategoryDevelopment},
	{Name: "GitBranch", Category: CategoryDevelopment},
	{Name: "GitCommit", Category: CategoryDevelopment},
	{Name: "Bug", Category: CategoryDevelopment},
	{Name: "Database", Category: CategoryDevelopment},
	{Name: "Server", Category: CategoryDevelopment},
	{Name: "Cpu", Category: CategoryDevelopment},
	{Name: "CloudUpload", Category: CategoryDevelopment},
	{Name: "CloudDownload", Category: CategoryDevelopment},

	{Name: "Settings", Category: CategorySystem},
	{Name: "Search", Category: CategorySystem},
	{Name: "Home", Category: CategorySystem},
	{Name: "User", Category: CategorySystem},
	{Name: "Users", Category: CategorySystem},
	{Name: "Lock", Category: CategorySystem},
	{Name: "Unlock", Category: CategorySystem},
	{Name: "Shield", Category: CategorySystem},
	{Name: "Calendar", Category: CategorySystem},
	{Name: "Clock", Category: CategorySystem},
	{Name: "Globe", Category: CategorySystem},
	{Name: "Map", Category: CategorySystem},
	{Name: "Star", Category: CategorySystem},
	{Name: "Heart", Category: CategorySystem},
	{Name: "Trash", Category: CategorySystem},

	{Name: "ShoppingCart", Category: CategoryCommerce},
	{Name: "CreditCard", Category: CategoryCommerce},
	{Name: "DollarSign", Category: CategoryCommerce},
	{Name: "Gift", Category: CategoryCommerce},
	{Name: "Tag", Category: CategoryCommerce},
	{Name: "Package", Category: CategoryCommerce},
}

// aliases maps common alternative words to the icon names they should
// surface. Matched after keywords, before fuzzy.
var aliases = map[string][]string{
	"email":     {"Mail", "MailOpen", "AtSign"},
	"letter":    {"Mail"},
	"chat":      {"MessageCircle", "MessageSquare"},
	"call":      {"Phone"},
	"photo":     {"Image", "Camera"},
	"picture":   {"Image"},
	"movie":     {"Film", "Video"},
	"song":      {"Music"},
	"audio":     {"Music", "Headphones", "Mic"},
	"document":  {"File", "FileText"},
	"directory": {"Folder"},
	"zip":       {"Archive"},
	"git":       {"GitBranch", "GitCommit"},
	"shell":     {"Terminal"},
	"console":   {"Terminal"},
	"gear":      {"Settings"},
	"cog":       {"Settings"},
	"magnify":   {"Search"},
	"house":     {"Home"},
	"person":    {"User"},
	"people":    {"Users"},
	"security":  {"Lock", "Shield"},
	"password":  {"Lock"},
	"time":      {"Clock"},
	"world":     {"Globe"},
	"web":       {"Globe"},
	"favorite":  {"Star", "Heart", "Bookmark"},
	"delete":    {"Trash"},
	"bin":       {"Trash"},
	"buy":       {"ShoppingCart"},
	"money":     {"DollarSign", "CreditCard"},
	"payment":   {"CreditCard"},
	"price":     {"Tag"},
	"shipping":  {"Package"},
	"feed":      {"Rss"},
}
