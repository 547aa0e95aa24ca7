package api

// ContentsResponse представляет ответ GET /repos/{owner}/{repo}/contents/{path}
type ContentsResponse struct {
	Type     string `json:"type"`     // "file" для файла
	Encoding string `json:"encoding"` // "base64"
	Name     string `json:"name"`
	Path     string `json:"path"`
	Content  string `json:"content"` // base64, строки по 60 символов через \n
	SHA      string `json:"sha"`     // git blob sha, version token файла
	Size     int64  `json:"size"`
}

// CommitIdentity представляет автора или коммиттера
type CommitIdentity struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateFileRequest представляет тело PUT /repos/{owner}/{repo}/contents/{path}
type UpdateFileRequest struct {
	Committer *CommitIdentity `json:"committer,omitempty"`
	Author    *CommitIdentity `json:"author,omitempty"`
	Message   string          `json:"message"`
	Content   string          `json:"content"`          // base64 нового содержимого
	SHA       string          `json:"sha,omitempty"`    // version token, полученный при чтении
	Branch    string          `json:"branch,omitempty"` // ветка, по умолчанию ветка репозитория
}

// UpdateFileResponse представляет ответ на успешный PUT
type UpdateFileResponse struct {
	Content ContentsResponse `json:"content"`
	Commit  CommitInfo       `json:"commit"`
}

// CommitInfo описывает созданный коммит
type CommitInfo struct {
	SHA     string `json:"sha"`
	HTMLURL string `json:"html_url"`
	Message string `json:"message"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Message          string `json:"message"`
	DocumentationURL string `json:"documentation_url,omitempty"`
}
