package ui

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/ytweb/internal/apiclient"
	"github.com/ytget/ytweb/internal/config"
	"github.com/ytget/ytweb/internal/logger"
	"github.com/ytget/ytweb/internal/model"
	"github.com/ytget/ytweb/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	client       *apiclient.Client
	log          *logger.ComponentLogger
	state        model.ViewState

	// hooks replaced in tests
	openURL    func(string) error
	runAsync   func(func())
	resetDelay time.Duration

	urlEntry    *widget.Entry
	submitBtn   *widget.Button
	settingsBtn *widget.Button
	subtitle    *widget.Label

	// Error panel under the URL row
	errorLabel     *widget.Label
	errorContainer *fyne.Container
	spinner        *widget.ProgressBarInfinite

	// Video card
	videoCard     *fyne.Container
	thumbnail     *canvas.Image
	durationBadge *widget.Label
	titleLabel    *widget.Label
	authorLabel   *widget.Label
	formatsTitle  *widget.Label
	formatsBox    *fyne.Container
	formatButtons []*widget.Button
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, log *logger.Logger) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		client:       apiclient.New(settings.GetAPIURL(), nil),
		log:          log.WithComponent(logger.ComponentClient),
		openURL:      platform.OpenURL,
		runAsync:     func(f func()) { go f() },
		resetDelay:   DownloadResetDelay,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.render()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.Validator = ui.validateURL
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onSubmit()
	}

	ui.submitBtn = widget.NewButton(ui.localization.GetText(KeySubmit), ui.onSubmit)
	ui.submitBtn.Importance = widget.HighImportance

	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	left := container.NewHBox(ui.settingsBtn)
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
		logoImage.FillMode = canvas.ImageFillContain
		left = container.NewHBox(logoImage, ui.settingsBtn)
	}
	topPanel := container.NewBorder(nil, nil, left, ui.submitBtn, ui.urlEntry)

	ui.subtitle = widget.NewLabel(ui.localization.GetText(KeySubtitle))
	ui.subtitle.Alignment = fyne.TextAlignCenter

	ui.spinner = widget.NewProgressBarInfinite()
	ui.spinner.Hide()

	ui.errorLabel = widget.NewLabel("")
	ui.errorLabel.Wrapping = fyne.TextWrapWord
	ui.errorLabel.Importance = widget.DangerImportance
	ui.errorContainer = container.NewBorder(nil, nil, widget.NewLabel(IconError), nil, ui.errorLabel)
	ui.errorContainer.Hide()

	ui.videoCard = ui.createVideoCard()
	ui.videoCard.Hide()

	content := container.NewVBox(
		ui.subtitle,
		topPanel,
		ui.spinner,
		ui.errorContainer,
		ui.videoCard,
	)

	ui.window.SetContent(container.NewVScroll(container.NewPadded(content)))
	ui.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
}

// createVideoCard builds the thumbnail, title, author and formats section
func (ui *RootUI) createVideoCard() *fyne.Container {
	ui.thumbnail = canvas.NewImageFromResource(theme.MediaVideoIcon())
	ui.thumbnail.SetMinSize(fyne.NewSize(ThumbnailWidth, ThumbnailHeight))
	ui.thumbnail.FillMode = canvas.ImageFillContain

	ui.durationBadge = widget.NewLabel("")
	ui.durationBadge.TextStyle = fyne.TextStyle{Monospace: true}
	badge := container.NewVBox(layout.NewSpacer(), container.NewHBox(layout.NewSpacer(), ui.durationBadge))

	ui.titleLabel = widget.NewLabel("")
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.titleLabel.Wrapping = fyne.TextWrapWord

	ui.authorLabel = widget.NewLabel("")

	ui.formatsTitle = widget.NewLabel(ui.localization.GetText(KeyChooseQuality))
	ui.formatsBox = container.NewGridWrap(fyne.NewSize(FormatButtonWidth, FormatButtonHeight))

	return container.NewVBox(
		widget.NewSeparator(),
		container.NewCenter(container.NewStack(ui.thumbnail, badge)),
		ui.titleLabel,
		ui.authorLabel,
		widget.NewSeparator(),
		ui.formatsTitle,
		ui.formatsBox,
	)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	checkItem := fyne.NewMenuItem(ui.localization.GetText(KeyCheckConnection), ui.onCheckConnection)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem, checkItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	// checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.subtitle.SetText(ui.localization.GetText(KeySubtitle))
	ui.formatsTitle.SetText(ui.localization.GetText(KeyChooseQuality))
	ui.render()
}

// validateURL validates the entered URL
func (ui *RootUI) validateURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil
	}

	parsedURL, err := url.Parse(strings.TrimSpace(input))
	if err != nil {
		return err
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}

	return nil
}

// onSubmit starts a metadata lookup for the entered URL
func (ui *RootUI) onSubmit() {
	if ui.state.Loading {
		return
	}

	videoURL := strings.TrimSpace(ui.urlEntry.Text)
	if videoURL == "" {
		ui.state.FinishLookup(nil, errors.New(ui.localization.GetText(KeyPleaseEnterURL)))
		ui.render()
		return
	}

	ui.state.BeginLookup(videoURL)
	ui.render()

	client := ui.client
	ui.runAsync(func() {
		ctx, cancel := context.WithTimeout(context.Background(), LookupTimeout)
		defer cancel()

		video, err := client.VideoInfo(ctx, videoURL)
		fyne.Do(func() {
			ui.finishLookup(videoURL, video, err)
		})
	})
}

// finishLookup applies a lookup result. Results for a URL other than the
// current one are dropped.
func (ui *RootUI) finishLookup(videoURL string, video *model.VideoMetadata, err error) {
	if !ui.state.Loading || ui.state.URL != videoURL {
		return
	}

	if err != nil {
		ui.log.Warn("Video lookup failed", logger.Fields{"url": videoURL, "error": err})
		ui.state.FinishLookup(nil, errors.New(ui.lookupErrorMessage(err)))
		ui.render()
		return
	}

	ui.log.Info("Video loaded", logger.Fields{"title": video.Title, "formats": len(video.Formats)})
	ui.state.FinishLookup(video, nil)
	ui.render()
	ui.loadThumbnail(video.Thumbnail)
}

// lookupErrorMessage returns the server message for API errors and a
// localized text for everything else
func (ui *RootUI) lookupErrorMessage(err error) string {
	var apiErr *apiclient.Error
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return ui.localization.GetText(KeyErrorGeneric)
	}
	return ui.localization.GetText(KeyServerUnavailable)
}

// loadThumbnail fetches the thumbnail in the background
func (ui *RootUI) loadThumbnail(thumbnailURL string) {
	ui.thumbnail.Resource = theme.MediaVideoIcon()
	ui.thumbnail.Refresh()
	if thumbnailURL == "" {
		return
	}

	client := ui.client
	ui.runAsync(func() {
		ctx, cancel := context.WithTimeout(context.Background(), LookupTimeout)
		defer cancel()

		data, err := client.Thumbnail(ctx, thumbnailURL)
		if err != nil {
			ui.log.Debug("Thumbnail not loaded", logger.Fields{"url": thumbnailURL, "error": err})
			return
		}
		fyne.Do(func() {
			ui.setThumbnail(thumbnailURL, data)
		})
	})
}

// setThumbnail shows data if it still belongs to the displayed video
func (ui *RootUI) setThumbnail(thumbnailURL string, data []byte) {
	if ui.state.Video == nil || ui.state.Video.Thumbnail != thumbnailURL {
		return
	}
	ui.thumbnail.Resource = fyne.NewStaticResource(thumbnailURL, data)
	ui.thumbnail.Refresh()
}

// onDownload hands the download URL of the chosen format to the browser
func (ui *RootUI) onDownload(option model.FormatOption) {
	if !ui.state.BeginDownload() {
		return
	}

	downloadURL := ui.client.DownloadURL(ui.state.URL, option.Itag)
	ui.log.Info("Download requested", logger.Fields{"itag": option.Itag, "quality": option.Quality})

	if err := ui.openURL(downloadURL); err != nil {
		ui.log.Error("Failed to open download", logger.Fields{"url": downloadURL, "error": err})
		ui.state.EndDownload()
		ui.render()
		dialog.ShowError(errors.New(ui.localization.GetText(KeyDownloadError)), ui.window)
		return
	}

	ui.render()
	time.AfterFunc(ui.resetDelay, func() {
		fyne.Do(ui.endDownload)
	})
}

// endDownload re-enables the format buttons
func (ui *RootUI) endDownload() {
	ui.state.EndDownload()
	ui.render()
}

// render syncs every widget with the view state
func (ui *RootUI) render() {
	if ui.state.Loading {
		ui.submitBtn.SetText(ui.localization.GetText(KeyLoading))
		ui.submitBtn.Disable()
		ui.urlEntry.Disable()
		ui.spinner.Show()
		ui.spinner.Start()
	} else {
		ui.submitBtn.SetText(ui.localization.GetText(KeySubmit))
		ui.submitBtn.Enable()
		ui.urlEntry.Enable()
		ui.spinner.Stop()
		ui.spinner.Hide()
	}

	if ui.state.Error != "" {
		ui.errorLabel.SetText(ui.state.Error)
		ui.errorContainer.Show()
	} else {
		ui.errorLabel.SetText("")
		ui.errorContainer.Hide()
	}

	ui.renderVideo(ui.state.Video)
}

// renderVideo fills or hides the video card
func (ui *RootUI) renderVideo(video *model.VideoMetadata) {
	if video == nil {
		ui.videoCard.Hide()
		ui.formatsBox.Objects = nil
		ui.formatButtons = nil
		ui.formatsBox.Refresh()
		return
	}

	ui.titleLabel.SetText(video.Title)
	ui.authorLabel.SetText(IconAuthor + " " + video.Author)
	ui.durationBadge.SetText(model.FormatDuration(video.Duration))

	ui.formatButtons = ui.formatButtons[:0]
	objects := make([]fyne.CanvasObject, 0, len(video.Formats))
	for _, option := range video.Formats {
		opt := option
		btn := NewFormatButton(opt, ui.localization, func() {
			ui.onDownload(opt)
		})
		if ui.state.Downloading {
			btn.Disable()
		}
		ui.formatButtons = append(ui.formatButtons, btn)
		objects = append(objects, btn)
	}
	if len(objects) == 0 {
		objects = append(objects, widget.NewLabel(ui.localization.GetText(KeyNoFormats)))
	}
	ui.formatsBox.Objects = objects
	ui.formatsBox.Refresh()

	ui.videoCard.Show()
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	settingsDialog := NewSettingsDialog(ui.settings, ui.localization, ui.window)
	settingsDialog.OnSaved = ui.onSettingsSaved
	settingsDialog.Show()
}

// onSettingsSaved applies changed settings
func (ui *RootUI) onSettingsSaved() {
	ui.client = apiclient.New(ui.settings.GetAPIURL(), nil)
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()
	ui.log.Info("Settings saved", logger.Fields{"api_url": ui.client.BaseURL(), "language": ui.settings.GetLanguage()})
}

// onCheckConnection pings the API server and reports the result
func (ui *RootUI) onCheckConnection() {
	client := ui.client
	ui.runAsync(func() {
		ctx, cancel := context.WithTimeout(context.Background(), HealthTimeout)
		defer cancel()

		status, err := client.Health(ctx)
		fyne.Do(func() {
			title := ui.localization.GetText(KeyCheckConnection)
			if err != nil {
				ui.log.Warn("Health check failed", logger.Fields{"api_url": client.BaseURL(), "error": err})
				dialog.ShowInformation(title, ui.localization.GetText(KeyServerUnavailable), ui.window)
				return
			}
			dialog.ShowInformation(title, ui.localization.GetText(KeyServerOK)+" ("+status.Status+")", ui.window)
		})
	})
}
