package cloudflare

import (
	"fmt"
	"net/http"
	"net/netip"
)

// RealIP returns middleware to update the remote address to the value of
// CF-Connecting-IP if the request is from a prefix in l. For this to be
// secure, the Host header must be verified.
func RealIP(l *IPList, onError func(*http.Request, error)) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfip := r.Header.Get("CF-Connecting-IP"); cfip != "" {
				if addr, err := realIP(l, r.RemoteAddr, cfip); err == nil {
					r2 := *r
					r2.RemoteAddr = addr
					r = &r2
				} else if onError != nil {
					onError(r, err)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// realIP replaces the address in remoteAddr with cfip if remoteAddr is in l.
func realIP(l *IPList, remoteAddr, cfip string) (string, error) {
	raddr, err := netip.ParseAddrPort(remoteAddr)
	if err != nil {
		return "", fmt.Errorf("parse remote addr: %w", err)
	}
	if !l.Contains(raddr.Addr()) {
		return "", fmt.Errorf("have CF-Connecting-IP, but ip %s is not Cloudflare", raddr.Addr())
	}
	x, err := netip.ParseAddr(cfip)
	if err != nil {
		return "", fmt.Errorf("parse CF-Connecting-IP: %w", err)
	}
	return netip.AddrPortFrom(x, raddr.Port()).String(), nil
}
