package rod

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"net/url"
	"sync"
	"time"

	"page-explorer/internal/application/port/output"
	"page-explorer/internal/domain/entity"

	"github.com/disintegration/imaging"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/ysmood/gson"
)

var _ output.BrowserSession = (*BrowserAdapter)(nil)

var (
	ErrInvalidURL        = errors.New("invalid url")
	ErrInvalidSelector   = errors.New("invalid selector")
	ErrNavigationTimeout = errors.New("navigation timeout")
)

const (
	defaultTimeout           = 5 * time.Second
	defaultNavigationTimeout = 60 * time.Second
	defaultIdleWindow        = 500 * time.Millisecond
	defaultSlowMotion        = 0
	defaultScreenshotWidth   = 1024

	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// serializeDocument returns the full document including the doctype.
const serializeDocument = `() => {
	const dt = document.doctype ? new XMLSerializer().serializeToString(document.doctype) + "\n" : "";
	return dt + document.documentElement.outerHTML;
}`

type BrowserConfig struct {
	Bin               string
	Headless          bool
	SlowMotion        time.Duration
	Timeout           time.Duration // поиск элемента по одному кандидату
	NavigationTimeout time.Duration
	IdleWindow        time.Duration // сколько сеть должна молчать, чтобы считаться idle
	NoSandbox         bool
	DevTools          bool
	Trace             bool
	UserAgent         string
	ScreenshotWidth   int
}

func DefaultConfig() BrowserConfig {
	return BrowserConfig{
		Headless:          true,
		SlowMotion:        defaultSlowMotion,
		Timeout:           defaultTimeout,
		NavigationTimeout: defaultNavigationTimeout,
		IdleWindow:        defaultIdleWindow,
		UserAgent:         DefaultUserAgent,
		ScreenshotWidth:   defaultScreenshotWidth,
	}
}

// BrowserAdapter — одна страница в одном процессе Chrome.
type BrowserAdapter struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	page     *rod.Page
	cfg      BrowserConfig

	mu     sync.Mutex
	closed bool
}

func NewBrowserAdapter(ctx context.Context, cfg BrowserConfig) (*BrowserAdapter, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg = withDefaults(cfg)

	l := launcher.New().
		Context(ctx).
		Headless(cfg.Headless).
		Devtools(cfg.DevTools).
		NoSandbox(cfg.NoSandbox).
		Delete("use-mock-keychain")

	bin := cfg.Bin
	if bin == "" {
		bin, _ = launcher.LookPath()
	}
	if bin != "" {
		l = l.Bin(bin)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().
		ControlURL(controlURL).
		Trace(cfg.Trace).
		SlowMotion(cfg.SlowMotion)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		_ = browser.Close()
		l.Kill()
		return nil, fmt.Errorf("failed to open page: %w", err)
	}

	if cfg.UserAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: cfg.UserAgent}); err != nil {
			_ = browser.Close()
			l.Kill()
			return nil, fmt.Errorf("failed to set user agent: %w", err)
		}
	}

	return &BrowserAdapter{
		browser:  browser,
		launcher: l,
		page:     page,
		cfg:      cfg,
	}, nil
}

func withDefaults(cfg BrowserConfig) BrowserConfig {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.NavigationTimeout <= 0 {
		cfg.NavigationTimeout = defaultNavigationTimeout
	}
	if cfg.IdleWindow <= 0 {
		cfg.IdleWindow = defaultIdleWindow
	}
	if cfg.ScreenshotWidth <= 0 {
		cfg.ScreenshotWidth = defaultScreenshotWidth
	}
	return cfg
}

// Navigate loads rawURL and waits for network quiescence. The whole wait is
// bounded by NavigationTimeout; running out of it is ErrNavigationTimeout.
func (b *BrowserAdapter) Navigate(ctx context.Context, rawURL string) error {
	if err := validateURL(rawURL); err != nil {
		return err
	}
	if !b.IsReady() {
		return output.ErrSessionClosed
	}

	navCtx, cancel := context.WithTimeout(ctx, b.cfg.NavigationTimeout)
	defer cancel()

	page := b.page.Context(navCtx)
	waitIdle := page.WaitRequestIdle(b.cfg.IdleWindow, nil, nil, nil)

	if err := page.Navigate(rawURL); err != nil {
		return b.navigationError(ctx, navCtx, err)
	}
	if err := page.WaitLoad(); err != nil {
		return b.navigationError(ctx, navCtx, err)
	}
	waitIdle()

	if navCtx.Err() != nil {
		return b.navigationError(ctx, navCtx, navCtx.Err())
	}
	return nil
}

func (b *BrowserAdapter) navigationError(ctx, navCtx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if errors.Is(navCtx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w after %s", ErrNavigationTimeout, b.cfg.NavigationTimeout)
	}
	return b.sessionError(fmt.Errorf("navigation failed: %w", err))
}

func (b *BrowserAdapter) Click(ctx context.Context, candidate entity.SelectorCandidate) error {
	if candidate.Query == "" {
		return ErrInvalidSelector
	}
	if !b.IsReady() {
		return output.ErrSessionClosed
	}

	page := b.page.Context(ctx).Timeout(b.cfg.Timeout)
	defer page.CancelTimeout()

	var (
		el  *rod.Element
		err error
	)
	if candidate.IsXPath() {
		el, err = page.ElementX(candidate.Query)
	} else {
		el, err = page.Element(candidate.Query)
	}
	if err != nil {
		return b.sessionError(fmt.Errorf("element not found: %s: %w", candidate.Query, err))
	}

	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return b.sessionError(fmt.Errorf("click failed: %s: %w", candidate.Query, err))
	}
	return nil
}

func (b *BrowserAdapter) Evaluate(ctx context.Context, js string) (gson.JSON, error) {
	if !b.IsReady() {
		return gson.New(nil), output.ErrSessionClosed
	}

	res, err := b.page.Context(ctx).Eval(js)
	if err != nil {
		return gson.New(nil), b.sessionError(fmt.Errorf("eval failed: %w", err))
	}
	return res.Value, nil
}

func (b *BrowserAdapter) HTML(ctx context.Context) (string, error) {
	res, err := b.Evaluate(ctx, serializeDocument)
	if err != nil {
		return "", err
	}
	return res.Str(), nil
}

func (b *BrowserAdapter) Screenshot(ctx context.Context) (*entity.Screenshot, error) {
	if !b.IsReady() {
		return nil, output.ErrSessionClosed
	}

	imgBytes, err := b.page.Context(ctx).Screenshot(true, &proto.PageCaptureScreenshot{
		Format:  proto.PageCaptureScreenshotFormatJpeg,
		Quality: gson.Int(80),
	})
	if err != nil {
		return nil, fmt.Errorf("screenshot failed: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("image decode failed: %w", err)
	}

	if img.Bounds().Dx() > b.cfg.ScreenshotWidth {
		img = imaging.Resize(img, b.cfg.ScreenshotWidth, 0, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: 75}); err != nil {
		return nil, fmt.Errorf("jpeg encode failed: %w", err)
	}

	return &entity.Screenshot{
		Data:   buf.Bytes(),
		Format: "jpeg",
		Width:  img.Bounds().Dx(),
		Height: img.Bounds().Dy(),
	}, nil
}

func (b *BrowserAdapter) CurrentURL() string {
	if !b.IsReady() {
		return ""
	}
	info, err := b.page.Info()
	if err != nil {
		return ""
	}
	return info.URL
}

func (b *BrowserAdapter) IsReady() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return !b.closed && b.page != nil
}

func (b *BrowserAdapter) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true

	if b.browser != nil {
		_ = b.browser.Close()
	}
	if b.launcher != nil {
		b.launcher.Kill()
		b.launcher.Cleanup()
	}
}

// sessionError помечает ошибку как ErrSessionClosed, если страница больше не отвечает.
func (b *BrowserAdapter) sessionError(err error) error {
	if b.IsReady() {
		if _, infoErr := b.page.Info(); infoErr == nil {
			return err
		}
	}
	return fmt.Errorf("%w: %w", output.ErrSessionClosed, err)
}

func validateURL(rawURL string) error {
	if rawURL == "" {
		return fmt.Errorf("%w: empty", ErrInvalidURL)
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	switch u.Scheme {
	case "http", "https":
		if u.Host == "" {
			return fmt.Errorf("%w: missing host in %q", ErrInvalidURL, rawURL)
		}
	case "file":
	default:
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}
	return nil
}
