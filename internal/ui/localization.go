package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyLoad             = "load"
	KeyDownloadClip     = "download_clip"
	KeyOpen             = "open"
	KeyReveal           = "reveal"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeyOutputDirectory  = "output_directory"
	KeyMaxParallel      = "max_parallel"
	KeyDefaultFormat    = "default_format"
	KeyAutoReveal       = "auto_reveal"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyBrowse           = "browse"
	KeyEnterURL         = "enter_url"
	KeySettingsSaved    = "settings_saved"
	KeyVideoLoaded      = "video_loaded"
	KeyLoadingVideo     = "loading_video"
	KeyExportStarted    = "export_started"
	KeyExportCompleted  = "export_completed"
	KeyErrorOpeningFile = "error_opening_file"
	KeyInvalidURL       = "invalid_url"
	KeyPleaseEnterURL   = "please_enter_url"
	KeyInvalidTrimRange = "invalid_trim_range"
	KeyDuration         = "duration"
	KeyTrimStart        = "trim_start"
	KeyTrimEnd          = "trim_end"
	KeyFormat           = "format"
	KeyNoVideoLoaded    = "no_video_loaded"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "YT Trimmer",
		KeyLoad:             "Load",
		KeyDownloadClip:     "Download Clip",
		KeyOpen:             "Open",
		KeyReveal:           "Reveal",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeyOutputDirectory:  "Output Directory",
		KeyMaxParallel:      "Max Parallel Exports",
		KeyDefaultFormat:    "Default Format",
		KeyAutoReveal:       "Reveal clips when finished",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyBrowse:           "Browse",
		KeyEnterURL:         "Enter YouTube URL (https://youtube.com/watch?v=...)",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyVideoLoaded:      "Video loaded",
		KeyLoadingVideo:     "Loading video...",
		KeyExportStarted:    "Export started",
		KeyExportCompleted:  "Export completed",
		KeyErrorOpeningFile: "Error opening file",
		KeyInvalidURL:       "Invalid URL",
		KeyPleaseEnterURL:   "Please enter a URL",
		KeyInvalidTrimRange: "End must be after start",
		KeyDuration:         "Duration",
		KeyTrimStart:        "Start",
		KeyTrimEnd:          "End",
		KeyFormat:           "Format",
		KeyNoVideoLoaded:    "Paste a YouTube link above to get started",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "YT Триммер",
		KeyLoad:             "Загрузить",
		KeyDownloadClip:     "Скачать клип",
		KeyOpen:             "Открыть",
		KeyReveal:           "Показать",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeyOutputDirectory:  "Папка вывода",
		KeyMaxParallel:      "Макс. параллельных",
		KeyDefaultFormat:    "Формат по умолчанию",
		KeyAutoReveal:       "Показывать готовые клипы",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeyBrowse:           "Обзор",
		KeyEnterURL:         "Введите URL YouTube (https://youtube.com/watch?v=...)",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyVideoLoaded:      "Видео загружено",
		KeyLoadingVideo:     "Загрузка видео...",
		KeyExportStarted:    "Экспорт начат",
		KeyExportCompleted:  "Экспорт завершён",
		KeyErrorOpeningFile: "Ошибка открытия файла",
		KeyInvalidURL:       "Неверный URL",
		KeyPleaseEnterURL:   "Пожалуйста, введите URL",
		KeyInvalidTrimRange: "Конец должен быть после начала",
		KeyDuration:         "Длительность",
		KeyTrimStart:        "Начало",
		KeyTrimEnd:          "Конец",
		KeyFormat:           "Формат",
		KeyNoVideoLoaded:    "Вставьте ссылку YouTube выше, чтобы начать",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "YT Trimmer",
		KeyLoad:             "Carregar",
		KeyDownloadClip:     "Baixar Clipe",
		KeyOpen:             "Abrir",
		KeyReveal:           "Revelar",
		KeySettings:         "Configurações",
		KeyFile:             "Arquivo",
		KeyLanguage:         "Idioma",
		KeyOutputDirectory:  "Diretório de Saída",
		KeyMaxParallel:      "Max Exportações Paralelas",
		KeyDefaultFormat:    "Formato Padrão",
		KeyAutoReveal:       "Revelar clipes ao concluir",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeyBrowse:           "Navegar",
		KeyEnterURL:         "Digite URL do YouTube (https://youtube.com/watch?v=...)",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyVideoLoaded:      "Vídeo carregado",
		KeyLoadingVideo:     "Carregando vídeo...",
		KeyExportStarted:    "Exportação iniciada",
		KeyExportCompleted:  "Exportação concluída",
		KeyErrorOpeningFile: "Erro ao abrir arquivo",
		KeyInvalidURL:       "URL inválida",
		KeyPleaseEnterURL:   "Por favor, digite uma URL",
		KeyInvalidTrimRange: "O fim deve ser depois do início",
		KeyDuration:         "Duração",
		KeyTrimStart:        "Início",
		KeyTrimEnd:          "Fim",
		KeyFormat:           "Formato",
		KeyNoVideoLoaded:    "Cole um link do YouTube acima para começar",
	}
}
