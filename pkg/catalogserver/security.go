/*
Copyright © 2025 ExistTV Authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package catalogserver

import (
	"net"
	"net/http"
	"strings"

	"github.com/existtv/existtv/pkg/logger"
	"github.com/oschwald/geoip2-golang"
)

type securityContext struct {
	geoipDb            *geoip2.Reader
	geoipWhitelist     map[string]bool
	geoIPCidrWhitelist []*net.IPNet
	corsDomains        []string
}

// newSecurityContext prepares the optional geoip gate and the CORS allow
// list. A missing geoip database disables the gate entirely.
func newSecurityContext(config SecurityConfig) (*securityContext, error) {
	ctx := &securityContext{
		corsDomains: config.AllowedCORSDomains,
	}

	if config.GeoIP.Database != "" {
		db, err := geoip2.Open(config.GeoIP.Database)
		if err != nil {
			return nil, err
		}
		ctx.geoipDb = db

		ctx.geoipWhitelist = make(map[string]bool)
		for _, country := range config.GeoIP.Whitelist {
			ctx.geoipWhitelist[country] = true
		}

		ctx.geoIPCidrWhitelist = make([]*net.IPNet, 0)
		for _, cidr := range config.GeoIP.InternalNetworks {
			_, ipnet, err := net.ParseCIDR(cidr)
			if err != nil {
				return nil, err
			}
			ctx.geoIPCidrWhitelist = append(ctx.geoIPCidrWhitelist, ipnet)
		}
	}

	return ctx, nil
}

func (s *securityContext) close() {
	if s.geoipDb != nil {
		s.geoipDb.Close()
	}
}

func (s *securityContext) geoip(next http.Handler) http.Handler {
	if s.geoipDb == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := ""
		if r.Header.Get("X-Real-IP") != "" {
			ip = r.Header.Get("X-Real-IP")
		} else if r.Header.Get("X-Forwarded-For") != "" {
			ips := strings.Split(r.Header.Get("X-Forwarded-For"), ",")
			ip = ips[0]
		} else {
			var err error
			ip, _, err = net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}
		}

		if ip == "" {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		parsedIP := net.ParseIP(ip)

		for _, ipnet := range s.geoIPCidrWhitelist {
			if ipnet.Contains(parsedIP) {
				next.ServeHTTP(w, r)
				return
			}
		}

		record, err := s.geoipDb.Country(parsedIP)
		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		countryCode := record.Country.IsoCode
		if _, ok := s.geoipWhitelist[countryCode]; !ok {
			logger.Infof("Access denied: %s, country: %s", ip, countryCode)
			http.Error(w, "Access Denied", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *securityContext) cors(next http.Handler) http.Handler {
	if len(s.corsDomains) == 0 {
		return next
	}

	allowed := make(map[string]bool, len(s.corsDomains))
	for _, domain := range s.corsDomains {
		allowed[domain] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && (allowed["*"] || allowed[origin]) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
