package reverso

type apiRequest struct {
	SourceText string `json:"source_text"`
	TargetText string `json:"target_text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
	Page       int    `json:"npage"`
	Mode       int    `json:"mode"`
}

type apiResponse struct {
	List  []apiExample `json:"list"`
	Pages int          `json:"npages"`
}

type apiExample struct {
	SourceText string `json:"s_text"`
	TargetText string `json:"t_text"`
}
