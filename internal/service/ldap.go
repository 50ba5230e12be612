package service

import (
	"crypto/tls"
	"time"

	"teamwork-backend/internal/config"

	"github.com/go-ldap/ldap/v3"
)

// LDAPProfile is the subset of directory attributes used to populate a
// first-login Person record.
type LDAPProfile struct {
	DN          string `json:"dn"`
	DisplayName string `json:"displayName"`
	SN          string `json:"sn"`
	GivenName   string `json:"givenName"`
	Mail        string `json:"mail"`
}

// LDAPService resolves principal identities against a corporate directory.
type LDAPService struct {
	cfg *config.Config
}

// NewLDAPService creates a new LDAP service
func NewLDAPService(cfg *config.Config) *LDAPService {
	return &LDAPService{cfg: cfg}
}

// LookupProfile finds the directory entry whose mail or cn matches the
// identity. Returns nil without error when the directory has no match.
func (s *LDAPService) LookupProfile(identity string) (*LDAPProfile, error) {
	addr := s.cfg.LDAPHost + ":" + s.cfg.LDAPPort

	l, err := ldap.DialTLS("tcp", addr, &tls.Config{InsecureSkipVerify: s.cfg.LDAPInsecureSkipVerify})
	if err != nil {
		return nil, err
	}
	defer l.Close()

	if s.cfg.LDAPTimeoutSec > 0 {
		l.SetTimeout(time.Duration(s.cfg.LDAPTimeoutSec) * time.Second)
	}

	if err := l.Bind(s.cfg.LDAPBindDN, s.cfg.LDAPBindPW); err != nil {
		return nil, err
	}

	escaped := ldap.EscapeFilter(identity)
	filter := "(|(mail=" + escaped + ")(cn=" + escaped + "))"
	attrs := []string{"displayName", "sn", "givenName", "mail"}

	req := ldap.NewSearchRequest(
		s.cfg.LDAPBaseDN,
		ldap.ScopeWholeSubtree, ldap.NeverDerefAliases, 1, 0, false,
		filter, attrs, nil,
	)

	res, err := l.Search(req)
	if err != nil {
		return nil, err
	}
	if len(res.Entries) == 0 {
		return nil, nil
	}

	entry := res.Entries[0]
	return &LDAPProfile{
		DN:          entry.DN,
		DisplayName: entry.GetAttributeValue("displayName"),
		SN:          entry.GetAttributeValue("sn"),
		GivenName:   entry.GetAttributeValue("givenName"),
		Mail:        entry.GetAttributeValue("mail"),
	}, nil
}
