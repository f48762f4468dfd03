package mailer

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/econectar/econectar-web/config"
	"github.com/wneessen/go-mail"
	"golang.org/x/crypto/argon2"
)

// ErrRateLimited marks a sender that already mailed within the
// configured window.
var ErrRateLimited = errors.New("sender was seen too recently")

const DefaultRateLimitTTL = time.Minute

// Mailer forwards contact-form submissions to the site mailbox. Sender
// addresses are never stored in the clear: the rate limiter keys on an
// argon2 digest of the lowercased address.
type Mailer struct {
	recentSenders *ristretto.Cache[uint64, time.Time]
	mailClient    *mail.Client
	mailAddress   string
	publicName    string
	salt          []byte
	rateLimitTTL  time.Duration

	send func(*mail.Msg) error
}

func NewMailer(cfg *config.MailConfig, rateLimitTTL time.Duration) (*Mailer, error) {
	recentSenders, err := ristretto.NewCache(&ristretto.Config[uint64, time.Time]{
		NumCounters:            10000,
		MaxCost:                1 << 20, // 1 MB
		BufferItems:            64,
		TtlTickerDurationInSec: 60,
	})
	if err != nil {
		return nil, fmt.Errorf("fail to initialize cache for sender rate limiting: %w", err)
	}

	mailClient, err := mail.NewClient(cfg.MailHost,
		mail.WithSMTPAuth(mail.SMTPAuthAutoDiscover), mail.WithTLSPortPolicy(mail.TLSMandatory),
		mail.WithUsername(cfg.Username), mail.WithPassword(cfg.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("fail to initialize mail client: %w", err)
	}

	if rateLimitTTL <= 0 {
		rateLimitTTL = DefaultRateLimitTTL
	}

	m := &Mailer{
		recentSenders: recentSenders,
		mailClient:    mailClient,
		mailAddress:   cfg.MailAddress,
		publicName:    cfg.PublicName,
		salt:          []byte(cfg.Salt),
		rateLimitTTL:  rateLimitTTL,
	}
	m.send = func(msg *mail.Msg) error { return m.mailClient.DialAndSend(msg) }
	return m, nil
}

// SendContact mails one submission to the site mailbox, with the
// visitor's address as reply-to. Returns ErrRateLimited when the same
// address submitted within the rate-limit window.
func (m *Mailer) SendContact(fromName string, fromEmail string, body string) error {
	key := m.senderKey(fromEmail)
	if _, seen := m.recentSenders.Get(key); seen {
		return ErrRateLimited
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat(m.publicName, m.mailAddress); err != nil {
		return fmt.Errorf("set sender of contact mail: %w", err)
	}
	if err := msg.To(m.mailAddress); err != nil {
		return fmt.Errorf("set recipient of contact mail: %w", err)
	}
	if err := msg.ReplyTo(fromEmail); err != nil {
		return fmt.Errorf("set reply-to of contact mail: %w", err)
	}
	msg.Subject(fmt.Sprintf("[econectar] message from %s", fromName))
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := m.send(msg); err != nil {
		return fmt.Errorf("send contact mail: %w", err)
	}

	m.recentSenders.SetWithTTL(key, time.Now(), 1, m.rateLimitTTL)
	m.recentSenders.Wait()
	return nil
}

func (m *Mailer) senderKey(email string) uint64 {
	digest := argon2.IDKey([]byte(strings.ToLower(strings.TrimSpace(email))), m.salt, 1, 19*1024, 1, 32)
	return binary.BigEndian.Uint64(digest[:8])
}

func (m *Mailer) Close() {
	m.recentSenders.Close()
}
