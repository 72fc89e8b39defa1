// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"

	"golang.org/x/crypto/sha3"
)

// NewTLSConfiguration - build the server TLS configuration from PEM
// encoded certificate and key text
//
// the second result is the certificate's SHA3-256 fingerprint, logged
// at startup so clients pinning the certificate can verify it:
//   openssl x509 -outform DER -in rpc.crt | sha3sum -a 256
func NewTLSConfiguration(certificatePEM string, privateKeyPEM string) (*tls.Config, [32]byte, error) {
	keyPair, err := tls.X509KeyPair([]byte(certificatePEM), []byte(privateKeyPEM))
	if nil != err {
		return nil, [32]byte{}, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
	}

	return tlsConfiguration, sha3.Sum256(keyPair.Certificate[0]), nil
}
