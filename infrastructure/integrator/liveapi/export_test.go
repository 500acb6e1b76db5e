package liveapi

// CredentialErrorMessage expõe a constante interna para os testes externos.
const CredentialErrorMessage = credentialErrorMessage
